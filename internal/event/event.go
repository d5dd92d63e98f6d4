// internal/event/event.go
package event

import "fmt"

// Event — событие от хоста. Поля заполнены в зависимости от Kind.
type Event struct {
	Kind      Kind
	Ticks     uint64    // KindTick
	Direction Direction // KindSwipe
	X, Y      int       // KindTouch
}

// Tick builds a periodic tick event carrying the number of elapsed periods.
func Tick(ticks uint64) Event {
	return Event{Kind: KindTick, Ticks: ticks}
}

// Swipe builds a swipe event. An invalid direction is an integration bug in
// the host and panics here rather than reaching the application.
func Swipe(d Direction) Event {
	if !d.Valid() {
		panic(fmt.Sprintf("event: invalid swipe %v", d))
	}
	return Event{Kind: KindSwipe, Direction: d}
}

// Touch builds a touch event at device coordinates.
func Touch(x, y int) Event {
	return Event{Kind: KindTouch, X: x, Y: y}
}

func (e Event) String() string {
	switch e.Kind {
	case KindTick:
		return fmt.Sprintf("tick(%d)", e.Ticks)
	case KindSwipe:
		return fmt.Sprintf("swipe(%v)", e.Direction)
	case KindTouch:
		return fmt.Sprintf("touch(%d,%d)", e.X, e.Y)
	}
	return e.Kind.String()
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

type subscription struct {
	mask     Mask
	listener Listener
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	subs []subscription
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe — подписка на классы событий. Повторная подписка заменяет маску.
func (d *Dispatcher) Subscribe(mask Mask, listener Listener) {
	for i, s := range d.subs {
		if s.listener == listener {
			d.subs[i].mask = mask
			return
		}
	}
	d.subs = append(d.subs, subscription{mask: mask, listener: listener})
}

// Unsubscribe — отписка от событий
func (d *Dispatcher) Unsubscribe(listener Listener) {
	for i, s := range d.subs {
		if s.listener == listener {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			break
		}
	}
}

// Dispatch — отправка события подписчикам, чья маска его принимает
func (d *Dispatcher) Dispatch(event Event) int {
	delivered := 0
	for _, s := range d.subs {
		if s.mask.Accepts(event) {
			s.listener.OnEvent(event)
			delivered++
		}
	}
	return delivered
}
