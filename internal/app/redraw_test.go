package app

import (
	"testing"

	"go-point-counter/internal/counter"
	"go-point-counter/internal/event"
	"go-point-counter/pkg/hexagon"
	"go-point-counter/pkg/render"
)

func newRedrawer() (*Redrawer, *render.Recorder) {
	r := render.NewRecorder()
	outline := hexagon.NewOutline(hexagon.Point{X: 120, Y: 120}, 48)
	return NewRedrawer(r, outline), r
}

func TestFormat(t *testing.T) {
	tests := []struct {
		n           int
		count, step string
	}{
		{0, "0", "+0"},
		{1, "1", "+1"},
		{-3, "-3", "-3"},
		{1234, "1234", "+1234"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.count {
			t.Errorf("FormatCount(%d): expected %q, got %q", tt.n, tt.count, got)
		}
		if got := FormatStep(tt.n); got != tt.step {
			t.Errorf("FormatStep(%d): expected %q, got %q", tt.n, tt.step, got)
		}
	}
}

func TestUpdateCleanStateDoesNothing(t *testing.T) {
	rd, rec := newRedrawer()
	s := counter.New(0)
	s.ClearDirty()

	if rd.Update(s) {
		t.Error("Expected Update to report no work")
	}
	if len(rec.Commands) != 0 {
		t.Errorf("Expected no commands, got %v", rec.Commands)
	}
}

func TestUpdateOrder(t *testing.T) {
	rd, rec := newRedrawer()
	s := counter.New(0)

	if !rd.Update(s) {
		t.Fatal("Expected Update to draw")
	}
	ops := []render.Op{render.OpFill, render.OpText, render.OpFill, render.OpText,
		render.OpLine, render.OpLine, render.OpLine, render.OpLine, render.OpLine, render.OpLine}
	if len(rec.Commands) != len(ops) {
		t.Fatalf("Expected %d commands, got %v", len(ops), rec.Commands)
	}
	for i, op := range ops {
		if rec.Commands[i].Op != op {
			t.Errorf("Command %d: expected op %d, got %v", i, op, rec.Commands[i])
		}
	}
	if s.ConsumeDirty() {
		t.Error("Expected dirty cleared")
	}
	if rd.queued != 0 {
		t.Errorf("Expected pending draws drained, %d left", rd.queued)
	}
}

func TestTextFieldPlacement(t *testing.T) {
	rd, rec := newRedrawer()
	rd.Update(counter.New(0))

	texts := rec.Filter(render.OpText)
	if texts[0].X != 0 || texts[0].Y != 120 || texts[0].Width != 240 {
		t.Errorf("Unexpected count field %v", texts[0])
	}
	if texts[1].X != 0 || texts[1].Y != 190 || texts[1].Width != 240 {
		t.Errorf("Unexpected step field %v", texts[1])
	}
}

func TestClearBoxUsesMargin(t *testing.T) {
	rd, rec := newRedrawer()
	rd.Update(counter.New(0))

	fills := rec.Filter(render.OpFill)
	// "0" is 10px wide, 1.5x is 15, centred in 240.
	if f := fills[0]; f.X != 112 || f.Y != 120 || f.W != 15 || f.H != 20 {
		t.Errorf("Unexpected count clear box %v", f)
	}
	// "+1" is 20px wide, 1.5x is 30.
	if f := fills[1]; f.X != 105 || f.Y != 190 || f.W != 30 || f.H != 20 {
		t.Errorf("Unexpected step clear box %v", f)
	}
}

func TestClearBoxCoversLongerPreviousText(t *testing.T) {
	rd, rec := newRedrawer()
	s := counter.New(0)
	for i := 0; i < 99; i++ {
		s.ApplySwipe(event.Up)
	}
	s.ApplySwipe(event.Left) // count -100, step +100
	rd.Update(s)

	s.AttemptReset(0) // count 0
	rec.Reset()
	rd.Update(s)

	fills := rec.Filter(render.OpFill)
	// previous "-100" is 40px, 1.5x is 60.
	if f := fills[0]; f.W != 60 || f.X != 90 {
		t.Errorf("Expected clear box sized for previous text, got %v", f)
	}
	if got := rec.Filter(render.OpText)[0].Text; got != "0" {
		t.Errorf("Expected new count 0, got %q", got)
	}
}

func TestClearBoxClampedToField(t *testing.T) {
	rd, rec := newRedrawer()
	rec.CharWidth = 30
	s := counter.New(0)
	for i := 0; i < 9; i++ {
		s.ApplySwipe(event.Up)
	}
	for i := 0; i < 100000; i++ {
		s.ApplySwipe(event.Right)
	}
	rd.Update(s)

	// "1000000" is 7*30=210px, 1.5x would be 315.
	if f := rec.Filter(render.OpFill)[0]; f.W != 240 || f.X != 0 {
		t.Errorf("Expected clear box clamped to field, got %v", f)
	}
}

func TestFullForgetsShownText(t *testing.T) {
	rd, rec := newRedrawer()
	s := counter.New(0)
	s.ApplySwipe(event.Left)
	s.ApplySwipe(event.Left)
	s.ApplySwipe(event.Left) // "-3"
	rd.Update(s)
	s.AttemptReset(0)

	rec.Reset()
	rd.Full(s)
	if f := rec.Filter(render.OpFill)[0]; f.W != 15 {
		t.Errorf("Expected clear box sized only for new text after a full clear, got %v", f)
	}
}
