// internal/system/manager.go
package system

import (
	"log"
	"time"

	"go-point-counter/internal/event"
	"go-point-counter/internal/interfaces"
	"go-point-counter/internal/state"
)

// Manager plays the watch's system services: it owns the foreground app,
// delivers ticks at the requested period, filters input by the app's event
// mask and puts the display to sleep when nobody keeps it awake.
type Manager struct {
	clock        interfaces.Clock
	machine      *state.StateMachine
	dispatcher   *event.Dispatcher
	listener     *appListener
	mask         event.Mask
	tickPeriod   float64
	nextTick     float64
	sleepTimeout float64
	awakeUntil   float64
	asleep       bool
	Debug        bool
}

var _ interfaces.System = (*Manager)(nil)

// appListener forwards dispatched events to the application entry points.
type appListener struct {
	app interfaces.Application
}

func (l *appListener) OnEvent(ev event.Event) {
	switch ev.Kind {
	case event.KindTick:
		l.app.Tick(ev.Ticks)
	case event.KindSwipe:
		l.app.Swipe(ev)
	case event.KindTouch:
		l.app.Touch(ev)
	}
}

func NewManager(clock interfaces.Clock, sleepTimeout time.Duration) *Manager {
	return &Manager{
		clock:        clock,
		machine:      state.NewStateMachine(),
		dispatcher:   event.NewDispatcher(),
		sleepTimeout: sleepTimeout.Seconds(),
	}
}

// Switch makes app the foreground application.
func (m *Manager) Switch(app interfaces.Application) {
	if m.listener != nil {
		m.dispatcher.Unsubscribe(m.listener)
	}
	m.mask = 0
	m.tickPeriod = 0
	m.asleep = false
	m.awakeUntil = m.clock.Now() + m.sleepTimeout
	m.listener = &appListener{app: app}
	m.dispatcher.Subscribe(0, m.listener)
	log.Printf("Switching to %s", app.Name())
	m.machine.Switch(app)
}

// Current returns the foreground application.
func (m *Manager) Current() interfaces.Application {
	return m.machine.Current()
}

func (m *Manager) RequestTick(period time.Duration) {
	m.tickPeriod = period.Seconds()
	m.nextTick = m.clock.Now() + m.tickPeriod
}

func (m *Manager) RequestEvent(mask event.Mask) {
	m.mask = mask
	if m.listener != nil {
		m.dispatcher.Subscribe(mask, m.listener)
	}
}

func (m *Manager) KeepAwake() {
	m.awakeUntil = m.clock.Now() + m.sleepTimeout
}

// Asleep reports whether the display is off.
func (m *Manager) Asleep() bool {
	return m.asleep
}

// Update delivers a tick when one is due and sleeps the display once the
// keep-awake deadline has passed. Missed periods are folded into one tick.
func (m *Manager) Update() {
	if m.asleep || m.listener == nil {
		return
	}
	now := m.clock.Now()
	if now >= m.awakeUntil {
		m.sleep()
		return
	}
	if m.tickPeriod <= 0 || now < m.nextTick {
		return
	}
	n := uint64((now-m.nextTick)/m.tickPeriod) + 1
	m.nextTick += float64(n) * m.tickPeriod
	m.dispatcher.Dispatch(event.Tick(n))
}

// Dispatch delivers a swipe or touch from the host. Input while asleep only
// wakes the display. Events outside the app's mask are dropped. Reports
// whether the app received the event.
func (m *Manager) Dispatch(ev event.Event) bool {
	if m.listener == nil {
		return false
	}
	if m.asleep {
		m.wake()
		return false
	}
	m.KeepAwake()
	if ev.Kind != event.KindTick && !m.mask.Accepts(ev) {
		if m.Debug {
			log.Printf("Dropping %v, mask %03b", ev, m.mask)
		}
		return false
	}
	return m.dispatcher.Dispatch(ev) > 0
}

func (m *Manager) sleep() {
	m.asleep = true
	m.tickPeriod = 0
	m.machine.Suspend()
	if m.Debug {
		log.Println("Display asleep")
	}
}

func (m *Manager) wake() {
	m.asleep = false
	m.KeepAwake()
	m.machine.Resume()
	if m.Debug {
		log.Println("Display awake")
	}
}
