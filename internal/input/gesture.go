// Package input turns raw pointer activity into watch events.
package input

import (
	"go-point-counter/internal/event"
	"go-point-counter/pkg/utils"
)

// GestureRecognizer classifies a press/release pair as a swipe or a touch.
type GestureRecognizer struct {
	threshold      int
	pressed        bool
	startX, startY int
}

func NewGestureRecognizer(threshold int) *GestureRecognizer {
	return &GestureRecognizer{threshold: threshold}
}

// Press starts tracking a pointer.
func (g *GestureRecognizer) Press(x, y int) {
	g.pressed = true
	g.startX, g.startY = x, y
}

// Pressed reports whether a pointer is down.
func (g *GestureRecognizer) Pressed() bool { return g.pressed }

// Release ends the gesture. ok is false if no press was tracked.
// Screen y grows downward, so a finger moving up the glass is Up.
func (g *GestureRecognizer) Release(x, y int) (ev event.Event, ok bool) {
	if !g.pressed {
		return event.Event{}, false
	}
	g.pressed = false

	dx, dy := x-g.startX, y-g.startY
	adx, ady := utils.Abs(dx), utils.Abs(dy)
	if adx < g.threshold && ady < g.threshold {
		return event.Touch(x, y), true
	}
	if adx >= ady {
		if dx > 0 {
			return event.Swipe(event.Right), true
		}
		return event.Swipe(event.Left), true
	}
	if dy > 0 {
		return event.Swipe(event.Down), true
	}
	return event.Swipe(event.Up), true
}

// Cancel forgets a press without producing an event.
func (g *GestureRecognizer) Cancel() { g.pressed = false }
