// pkg/render/recorder.go
package render

import "fmt"

// Op identifies a recorded surface call.
type Op int

const (
	OpClear Op = iota
	OpFill
	OpText
	OpLine
)

// Command is one recorded surface call. Unused fields stay zero.
type Command struct {
	Op     Op
	Text   string
	X, Y   int
	W, H   int // fill size
	X2, Y2 int // line end
	Width  int // text field width or line width
}

func (c Command) String() string {
	switch c.Op {
	case OpClear:
		return "clear"
	case OpFill:
		return fmt.Sprintf("fill(%d,%d %dx%d)", c.X, c.Y, c.W, c.H)
	case OpText:
		return fmt.Sprintf("text(%q at %d,%d w=%d)", c.Text, c.X, c.Y, c.Width)
	case OpLine:
		return fmt.Sprintf("line(%d,%d-%d,%d w=%d)", c.X, c.Y, c.X2, c.Y2, c.Width)
	}
	return "?"
}

// Recorder is a headless Surface that keeps every call. Text metrics are a
// fixed cell per character.
type Recorder struct {
	Commands   []Command
	CharWidth  int
	LineHeight int
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 10, LineHeight: 20}
}

func (r *Recorder) Clear() {
	r.Commands = append(r.Commands, Command{Op: OpClear})
}

func (r *Recorder) Fill(x, y, w, h int) {
	r.Commands = append(r.Commands, Command{Op: OpFill, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) MeasureText(s string) (int, int) {
	return len(s) * r.CharWidth, r.LineHeight
}

func (r *Recorder) DrawText(s string, x, y, width int) {
	r.Commands = append(r.Commands, Command{Op: OpText, Text: s, X: x, Y: y, Width: width})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2, width int) {
	r.Commands = append(r.Commands, Command{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width})
}

// Count returns how many recorded commands have the given op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded commands with the given op, in order.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
