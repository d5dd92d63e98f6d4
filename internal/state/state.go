// internal/state/state.go
package state

import "go-point-counter/internal/interfaces"

// StateMachine tracks the application currently in the foreground.
type StateMachine struct {
	current   interfaces.Application
	suspended bool
}

// NewStateMachine создаёт машину состояний без активного приложения
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Switch backgrounds the current application and foregrounds app.
func (sm *StateMachine) Switch(app interfaces.Application) {
	if sm.current != nil && !sm.suspended {
		sm.current.Background()
	}
	sm.current = app
	sm.suspended = false
	if sm.current != nil {
		sm.current.Foreground()
	}
}

// Current returns the foreground application, or nil.
func (sm *StateMachine) Current() interfaces.Application {
	return sm.current
}

// Suspend backgrounds the current application without replacing it.
func (sm *StateMachine) Suspend() {
	if sm.current == nil || sm.suspended {
		return
	}
	sm.suspended = true
	sm.current.Background()
}

// Resume foregrounds the suspended application again.
func (sm *StateMachine) Resume() {
	if sm.current == nil || !sm.suspended {
		return
	}
	sm.suspended = false
	sm.current.Foreground()
}

// Suspended reports whether the current application is backgrounded.
func (sm *StateMachine) Suspended() bool {
	return sm.suspended
}
