// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	AppName = "Points!"

	DisplayWidth  = 240
	DisplayHeight = 240
	Center        = DisplayWidth / 2
	HexRadius     = DisplayWidth / 5

	CountFieldX = 0
	CountFieldY = 120
	StepFieldX  = 0
	StepFieldY  = DisplayWidth - 50
	FieldWidth  = DisplayWidth

	InitialStep     = 1
	ResetWindow     = 0.4 // seconds between two taps that counts as a double-tap
	TickPeriod      = time.Second
	OutlineWidth    = 2
	ClearMargin     = 1.5 // clear box width relative to the widest text shown in a field
	SwipeThreshold  = 30  // pixels of travel before a press becomes a swipe
	SleepTimeout    = 15 * time.Second
	HapticDuration  = 40 * time.Millisecond
	HapticFrequency = 180.0
	HapticRate      = 44100

	DefaultScale    = 2
	DefaultFontSize = 24.0
	DefaultFPS      = 60
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	OutlineColor    = color.RGBA{70, 130, 180, 255}
)
