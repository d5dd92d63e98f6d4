package input

import (
	"testing"

	"go-point-counter/internal/event"
)

func TestRecognize(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           event.Event
	}{
		{"tap", 100, 100, 103, 98, event.Touch(103, 98)},
		{"right", 50, 100, 150, 110, event.Swipe(event.Right)},
		{"left", 150, 100, 40, 80, event.Swipe(event.Left)},
		{"up", 120, 200, 125, 60, event.Swipe(event.Up)},
		{"down", 120, 60, 110, 200, event.Swipe(event.Down)},
		{"exact threshold", 0, 0, 30, 0, event.Swipe(event.Right)},
		{"just under threshold", 0, 0, 29, 29, event.Touch(29, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGestureRecognizer(30)
			g.Press(tt.x0, tt.y0)
			got, ok := g.Release(tt.x1, tt.y1)
			if !ok {
				t.Fatal("Expected an event")
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	g := NewGestureRecognizer(30)
	if _, ok := g.Release(1, 1); ok {
		t.Error("Expected no event without a press")
	}
	g.Press(1, 1)
	g.Cancel()
	if g.Pressed() {
		t.Error("Expected cancel to clear the press")
	}
	if _, ok := g.Release(100, 1); ok {
		t.Error("Expected no event after cancel")
	}
}
