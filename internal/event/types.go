// internal/event/types.go
package event

import (
	"errors"
	"fmt"
)

// Kind — класс события
type Kind int

const (
	KindTick Kind = iota
	KindSwipe
	KindTouch
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindSwipe:
		return "swipe"
	case KindTouch:
		return "touch"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Direction is the direction a finger travelled during a swipe.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// ErrUnknownDirection is returned when raw host input names no known direction.
var ErrUnknownDirection = errors.New("unknown swipe direction")

// Valid reports whether d is one of the four swipe directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection decodes a host direction name.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "UP":
		return Up, nil
	case "down", "DOWN":
		return Down, nil
	case "left", "LEFT":
		return Left, nil
	case "right", "RIGHT":
		return Right, nil
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrUnknownDirection)
}

// Mask selects the event classes an application wants delivered.
type Mask uint8

const (
	MaskSwipeLeftRight Mask = 1 << iota
	MaskSwipeUpDown
	MaskTouch
)

// Accepts reports whether ev belongs to a class selected by m. Ticks are
// requested separately and never filtered by the mask.
func (m Mask) Accepts(ev Event) bool {
	switch ev.Kind {
	case KindTick:
		return true
	case KindTouch:
		return m&MaskTouch != 0
	case KindSwipe:
		if ev.Direction == Up || ev.Direction == Down {
			return m&MaskSwipeUpDown != 0
		}
		return m&MaskSwipeLeftRight != 0
	}
	return false
}
