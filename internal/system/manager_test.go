package system

import (
	"testing"
	"time"

	"go-point-counter/internal/event"
	"go-point-counter/internal/interfaces"
)

type manualClock struct{ now float64 }

func (c *manualClock) Now() float64 { return c.now }

// probeApp records lifecycle calls and asks for the same services the
// counter does.
type probeApp struct {
	sys         interfaces.System
	mask        event.Mask
	keepAwake   bool
	foregrounds int
	backgrounds int
	ticks       []uint64
	swipes      []event.Direction
	touches     int
}

func (a *probeApp) Name() string { return "probe" }

func (a *probeApp) Foreground() {
	a.foregrounds++
	a.sys.RequestTick(time.Second)
	a.sys.RequestEvent(a.mask)
}

func (a *probeApp) Background() { a.backgrounds++ }

func (a *probeApp) Tick(n uint64) {
	a.ticks = append(a.ticks, n)
	if a.keepAwake {
		a.sys.KeepAwake()
	}
}

func (a *probeApp) Swipe(ev event.Event) { a.swipes = append(a.swipes, ev.Direction) }
func (a *probeApp) Touch(ev event.Event) { a.touches++ }

func setup(mask event.Mask) (*Manager, *probeApp, *manualClock) {
	clock := &manualClock{}
	m := NewManager(clock, 15*time.Second)
	app := &probeApp{sys: m, mask: mask, keepAwake: true}
	m.Switch(app)
	return m, app, clock
}

func TestTicksAtRequestedPeriod(t *testing.T) {
	m, app, clock := setup(event.MaskTouch)

	clock.now = 0.5
	m.Update()
	if len(app.ticks) != 0 {
		t.Fatalf("Expected no tick before the period, got %v", app.ticks)
	}
	clock.now = 1.0
	m.Update()
	clock.now = 1.2
	m.Update()
	clock.now = 2.0
	m.Update()
	if len(app.ticks) != 2 || app.ticks[0] != 1 || app.ticks[1] != 1 {
		t.Errorf("Expected two single ticks, got %v", app.ticks)
	}
}

func TestMissedTicksAreFolded(t *testing.T) {
	m, app, clock := setup(event.MaskTouch)

	clock.now = 3.5
	m.Update()
	if len(app.ticks) != 1 || app.ticks[0] != 3 {
		t.Errorf("Expected one tick carrying 3 periods, got %v", app.ticks)
	}
	clock.now = 3.9
	m.Update()
	if len(app.ticks) != 1 {
		t.Errorf("Expected next tick at 4.0, got %v", app.ticks)
	}
}

func TestDispatchHonoursMask(t *testing.T) {
	m, app, _ := setup(event.MaskSwipeUpDown)

	if !m.Dispatch(event.Swipe(event.Up)) {
		t.Error("Expected up swipe delivered")
	}
	if m.Dispatch(event.Swipe(event.Left)) {
		t.Error("Expected left swipe dropped")
	}
	if m.Dispatch(event.Touch(5, 5)) {
		t.Error("Expected touch dropped")
	}
	if len(app.swipes) != 1 || app.swipes[0] != event.Up || app.touches != 0 {
		t.Errorf("Unexpected deliveries: swipes=%v touches=%d", app.swipes, app.touches)
	}
}

func TestSleepsWithoutKeepAwake(t *testing.T) {
	m, app, clock := setup(event.MaskTouch)
	app.keepAwake = false

	for clock.now = 1; clock.now <= 15; clock.now++ {
		m.Update()
	}
	if !m.Asleep() {
		t.Fatal("Expected display asleep after the timeout")
	}
	if app.backgrounds != 1 {
		t.Errorf("Expected app backgrounded once, got %d", app.backgrounds)
	}
	ticks := len(app.ticks)
	clock.now = 20
	m.Update()
	if len(app.ticks) != ticks {
		t.Error("Expected no ticks while asleep")
	}

	if m.Dispatch(event.Touch(1, 1)) {
		t.Error("Expected waking touch not to be delivered")
	}
	if m.Asleep() || app.foregrounds != 2 || app.touches != 0 {
		t.Errorf("Expected wake with foreground, asleep=%v fg=%d touches=%d", m.Asleep(), app.foregrounds, app.touches)
	}
	clock.now = 21
	m.Update()
	if len(app.ticks) != ticks+1 {
		t.Error("Expected ticks to resume after wake")
	}
}

func TestKeepAwakeFromTicksPreventsSleep(t *testing.T) {
	m, _, clock := setup(event.MaskTouch)

	for clock.now = 1; clock.now <= 60; clock.now++ {
		m.Update()
	}
	if m.Asleep() {
		t.Error("Expected ticks calling KeepAwake to hold the display on")
	}
}

func TestSwitchBackgroundsPrevious(t *testing.T) {
	m, first, _ := setup(event.MaskTouch)
	second := &probeApp{sys: m, mask: event.MaskSwipeLeftRight}
	m.Switch(second)

	if first.backgrounds != 1 || second.foregrounds != 1 {
		t.Errorf("Expected first bg=1 second fg=1, got %d %d", first.backgrounds, second.foregrounds)
	}
	m.Dispatch(event.Swipe(event.Right))
	if len(first.swipes) != 0 || len(second.swipes) != 1 {
		t.Error("Expected only the current app to receive input")
	}
	if m.Current() != second {
		t.Error("Expected second app current")
	}
}

func TestDispatchWithoutAppIsSafe(t *testing.T) {
	m := NewManager(&manualClock{}, time.Second)
	m.Update()
	if m.Dispatch(event.Touch(0, 0)) {
		t.Error("Expected nothing delivered without an app")
	}
}

func TestRTCIsMonotonic(t *testing.T) {
	r := NewRTC()
	a := r.Now()
	time.Sleep(5 * time.Millisecond)
	if b := r.Now(); b <= a {
		t.Errorf("Expected time to advance, got %v then %v", a, b)
	}
}
