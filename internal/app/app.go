// internal/app/app.go
package app

import (
	"log"

	"go-point-counter/internal/assets"
	"go-point-counter/internal/config"
	"go-point-counter/internal/counter"
	"go-point-counter/internal/event"
	"go-point-counter/internal/interfaces"
	"go-point-counter/internal/ui"
	"go-point-counter/pkg/hexagon"
	"go-point-counter/pkg/render"
)

// Deps are the host services the counter needs.
type Deps struct {
	Surface render.Surface
	Clock   interfaces.Clock
	Haptics interfaces.Haptics
	System  interfaces.System
	Debug   bool
}

// PointCounter is the counter application.
//
//   - Touch: double-tap anywhere to reset the count
//   - Swipe up/down: increment/decrement the step
//   - Swipe right/left: add/subtract the step to/from the count
type PointCounter struct {
	deps     Deps
	state    *counter.State
	redrawer *Redrawer
	reset    *ui.Button
}

var _ interfaces.Application = (*PointCounter)(nil)

type nopHaptics struct{}

func (nopHaptics) Pulse() {}

// New builds the app. Counter state lives as long as the returned value.
func New(deps Deps) *PointCounter {
	if deps.Haptics == nil {
		deps.Haptics = nopHaptics{}
	}
	outline := hexagon.NewOutline(hexagon.Point{X: config.Center, Y: config.Center}, config.HexRadius)
	return &PointCounter{
		deps:     deps,
		state:    counter.New(deps.Clock.Now()),
		redrawer: NewRedrawer(deps.Surface, outline),
		reset:    ui.NewButton(0, 0, config.DisplayWidth, config.DisplayHeight, ""),
	}
}

func (a *PointCounter) Name() string { return config.AppName }

// Icon returns the launcher icon in the watch's 2-bit RLE format.
func (a *PointCounter) Icon() []byte { return assets.PointCounterIcon }

// State exposes the counter values.
func (a *PointCounter) State() *counter.State { return a.state }

// Foreground activates the application.
func (a *PointCounter) Foreground() {
	a.redrawer.Full(a.state)
	a.deps.System.RequestTick(config.TickPeriod)
	a.deps.System.RequestEvent(event.MaskSwipeLeftRight | event.MaskSwipeUpDown | event.MaskTouch)
}

// Background deactivates the application without losing state.
func (a *PointCounter) Background() {}

func (a *PointCounter) Tick(ticks uint64) {
	a.deps.System.KeepAwake()
	a.redrawer.Update(a.state)
}

func (a *PointCounter) Swipe(ev event.Event) {
	a.state.ApplySwipe(ev.Direction)
	a.deps.Haptics.Pulse()
	a.redrawer.Update(a.state)
}

func (a *PointCounter) Touch(ev event.Event) {
	if a.deps.Debug {
		log.Printf("points: %v", ev)
	}
	a.deps.Haptics.Pulse()
	if a.reset.Touch(ev) {
		a.state.AttemptReset(a.deps.Clock.Now())
	}
	a.redrawer.Update(a.state)
}

// DefaultPalette is the colour scheme both hosts use.
func DefaultPalette() render.Palette {
	return render.Palette{
		Background: config.BackgroundColor,
		Text:       config.TextColor,
		Outline:    config.OutlineColor,
	}
}
