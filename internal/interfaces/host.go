// internal/interfaces/host.go
package interfaces

import (
	"time"

	"go-point-counter/internal/event"
)

// Clock returns the current time in seconds. Only differences are meaningful.
type Clock interface {
	Now() float64
}

// Haptics fires a short vibration. Fire-and-forget.
type Haptics interface {
	Pulse()
}

// System is the part of the host an application talks back to.
type System interface {
	RequestTick(period time.Duration)
	RequestEvent(mask event.Mask)
	KeepAwake()
}
