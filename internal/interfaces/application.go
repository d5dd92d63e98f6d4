// internal/interfaces/application.go
package interfaces

import "go-point-counter/internal/event"

// Application is what the host drives. These are the only entry points.
type Application interface {
	Name() string
	Foreground()
	Background()
	Tick(ticks uint64)
	Swipe(ev event.Event)
	Touch(ev event.Event)
}
