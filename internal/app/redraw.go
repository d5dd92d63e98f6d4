// internal/app/redraw.go
package app

import (
	"strconv"

	"go-point-counter/internal/config"
	"go-point-counter/internal/counter"
	"go-point-counter/pkg/hexagon"
	"go-point-counter/pkg/render"
)

const (
	fieldCount = iota
	fieldStep
	fieldTotal
)

// TextDirective is one pending text draw: the string and the field it goes in.
type TextDirective struct {
	Text  string
	X, Y  int
	Width int
}

// Redrawer repaints the two text fields and the hexagon outline when the
// counter state is dirty.
type Redrawer struct {
	surface render.Surface
	outline hexagon.Outline

	pending [fieldTotal]TextDirective
	queued  int
	shown   [fieldTotal]string
}

func NewRedrawer(surface render.Surface, outline hexagon.Outline) *Redrawer {
	return &Redrawer{surface: surface, outline: outline}
}

// Full clears the whole display and repaints everything.
func (r *Redrawer) Full(s *counter.State) {
	r.surface.Clear()
	r.shown = [fieldTotal]string{}
	s.MarkDirty()
	r.Update(s)
}

// Update repaints dirty fields and returns whether anything was drawn.
func (r *Redrawer) Update(s *counter.State) bool {
	if !s.ConsumeDirty() {
		return false
	}
	r.queue(s)
	r.draw()
	s.ClearDirty()
	return true
}

func (r *Redrawer) queue(s *counter.State) {
	r.pending[fieldCount] = TextDirective{
		Text:  FormatCount(s.Count()),
		X:     config.CountFieldX,
		Y:     config.CountFieldY,
		Width: config.FieldWidth,
	}
	r.pending[fieldStep] = TextDirective{
		Text:  FormatStep(s.Step()),
		X:     config.StepFieldX,
		Y:     config.StepFieldY,
		Width: config.FieldWidth,
	}
	r.queued = fieldTotal
}

func (r *Redrawer) draw() {
	for i := 0; i < r.queued; i++ {
		d := r.pending[i]
		x, y, w, h := r.clearBox(r.shown[i], d)
		r.surface.Fill(x, y, w, h)
		r.surface.DrawText(d.Text, d.X, d.Y, d.Width)
		r.shown[i] = d.Text
	}
	r.strokeOutline()
	r.pending = [fieldTotal]TextDirective{}
	r.queued = 0
}

// clearBox covers whatever was shown in the field before. Text is centred in
// the field, so the box is centred too and clamped to the field width.
func (r *Redrawer) clearBox(prev string, d TextDirective) (x, y, w, h int) {
	pw, ph := r.surface.MeasureText(prev)
	nw, nh := r.surface.MeasureText(d.Text)
	w = int(float64(max(pw, nw)) * config.ClearMargin)
	if w > d.Width {
		w = d.Width
	}
	h = max(ph, nh)
	return render.CenteredX(d.X, d.Width, w), d.Y, w, h
}

// The text clear may cut through the outline, so it is stroked on every pass.
func (r *Redrawer) strokeOutline() {
	for i := range r.outline {
		a, b := r.outline.Edge(i)
		r.surface.DrawLine(a.X, a.Y, b.X, b.Y, config.OutlineWidth)
	}
}

// FormatCount renders the count as plain decimal.
func FormatCount(n int) string {
	return strconv.Itoa(n)
}

// FormatStep renders the step with an explicit sign; zero shows as "+0".
func FormatStep(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
