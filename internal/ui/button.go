// internal/ui/button.go
package ui

import (
	"go-point-counter/internal/event"
	"go-point-counter/pkg/render"
)

// Button is a rectangular touch target with an optional label.
type Button struct {
	X, Y, W, H int
	Label      string
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h int, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label}
}

// Contains reports whether a point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Touch reports whether a touch event landed on the button.
func (b *Button) Touch(ev event.Event) bool {
	return ev.Kind == event.KindTouch && b.Contains(ev.X, ev.Y)
}

// Draw paints the button background and its label. An unlabeled button is
// an invisible hit region and draws nothing.
func (b *Button) Draw(s render.Surface) {
	if b.Label == "" {
		return
	}
	s.Fill(b.X, b.Y, b.W, b.H)
	_, th := s.MeasureText(b.Label)
	s.DrawText(b.Label, b.X, b.Y+(b.H-th)/2, b.W)
}
