// Package counter holds the point counter's values and gesture transitions.
package counter

import (
	"fmt"

	"go-point-counter/internal/config"
	"go-point-counter/internal/event"
)

// State is the counter model. Count and step are unbounded apart from the
// native int width; nothing here clamps them.
type State struct {
	count     int
	step      int
	dirty     bool
	lastReset float64
}

// New returns a state with count 0, step 1 and the reset debounce anchored at now.
func New(now float64) *State {
	return &State{
		step:      config.InitialStep,
		dirty:     true,
		lastReset: now,
	}
}

func (s *State) Count() int { return s.count }
func (s *State) Step() int  { return s.step }

// LastReset returns the time of the most recent touch inside the reset region.
func (s *State) LastReset() float64 { return s.lastReset }

// ApplySwipe updates step (up/down) or count (left/right by the current step).
func (s *State) ApplySwipe(dir event.Direction) {
	switch dir {
	case event.Up:
		s.step++
	case event.Down:
		s.step--
	case event.Right:
		s.count += s.step
	case event.Left:
		s.count -= s.step
	default:
		panic(fmt.Sprintf("counter: invalid swipe %v", dir))
	}
	s.dirty = true
}

// AttemptReset zeroes the count if the previous touch in the reset region was
// at most config.ResetWindow ago. The timestamp is overwritten on every call,
// so each touch is measured against the one before it.
func (s *State) AttemptReset(now float64) bool {
	reset := now-s.lastReset <= config.ResetWindow
	if reset {
		s.count = 0
		s.dirty = true
	}
	s.lastReset = now
	return reset
}

// ConsumeDirty reports whether a visible value changed since the last redraw.
// It does not clear the flag.
func (s *State) ConsumeDirty() bool { return s.dirty }

func (s *State) MarkDirty()  { s.dirty = true }
func (s *State) ClearDirty() { s.dirty = false }
