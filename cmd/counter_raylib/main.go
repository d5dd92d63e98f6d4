// cmd/counter_raylib/main.go
package main

import (
	"flag"
	"log"

	"go-point-counter/internal/app"
	"go-point-counter/internal/assets"
	"go-point-counter/internal/config"
	"go-point-counter/internal/event"
	"go-point-counter/internal/haptics"
	"go-point-counter/internal/input"
	"go-point-counter/internal/interfaces"
	"go-point-counter/internal/system"
	"go-point-counter/pkg/render/rlrender"
	"go-point-counter/pkg/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibClock reads raylib's own timer, seconds since InitWindow.
type raylibClock struct{}

func (raylibClock) Now() float64 { return rl.GetTime() }

var keySwipes = map[int32]event.Direction{
	rl.KeyUp:    event.Up,
	rl.KeyDown:  event.Down,
	rl.KeyLeft:  event.Left,
	rl.KeyRight: event.Right,
}

func devicePoint(scale int) (int, int) {
	pos := rl.GetMousePosition()
	x := utils.Clamp(int(pos.X)/scale, 0, config.DisplayWidth-1)
	y := utils.Clamp(int(pos.Y)/scale, 0, config.DisplayHeight-1)
	return x, y
}

func pollInput(manager *system.Manager, gestures *input.GestureRecognizer, scale int) {
	for key, dir := range keySwipes {
		if rl.IsKeyPressed(key) {
			manager.Dispatch(event.Swipe(dir))
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		manager.Dispatch(event.Touch(config.Center, config.Center))
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		gestures.Press(devicePoint(scale))
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if ev, ok := gestures.Release(devicePoint(scale)); ok {
			manager.Dispatch(ev)
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to a JSON settings file")
	scale := flag.Int("scale", 0, "window scale, overrides the settings file")
	debug := flag.Bool("debug", false, "log input events")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *scale > 0 {
		settings.Scale = *scale
	}

	rl.InitWindow(int32(config.DisplayWidth*settings.Scale), int32(config.DisplayHeight*settings.Scale), config.AppName)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.FPS))

	if icon, err := assets.Icon(); err != nil {
		log.Printf("WARNING: %v", err)
	} else {
		rl.SetWindowIcon(*rl.NewImageFromImage(icon))
	}

	surface := rlrender.New(config.DisplayWidth, config.DisplayHeight, float32(settings.FontSize), app.DefaultPalette())
	defer surface.Unload()

	var pulser interfaces.Haptics = haptics.Nop{}
	if settings.Haptics {
		buzzer := haptics.NewBuzzer(config.HapticRate, config.HapticFrequency, config.HapticDuration)
		if err := buzzer.Initialize(); err == nil {
			pulser = buzzer
			defer buzzer.Close()
		}
	}

	clock := raylibClock{}
	manager := system.NewManager(clock, config.SleepTimeout)
	manager.Debug = *debug
	counter := app.New(app.Deps{
		Surface: surface,
		Clock:   clock,
		Haptics: pulser,
		System:  manager,
		Debug:   *debug,
	})
	gestures := input.NewGestureRecognizer(config.SwipeThreshold)

	// The app draws while handling events, so events are handled inside
	// texture mode and the texture is presented afterwards.
	surface.Begin()
	manager.Switch(counter)
	surface.End()

	for !rl.WindowShouldClose() {
		surface.Begin()
		pollInput(manager, gestures, settings.Scale)
		manager.Update()
		surface.End()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		surface.Blit(float32(settings.Scale), manager.Asleep())
		rl.EndDrawing()
	}
}
