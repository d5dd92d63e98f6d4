// cmd/counter/main.go
package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"go-point-counter/internal/app"
	"go-point-counter/internal/assets"
	"go-point-counter/internal/config"
	"go-point-counter/internal/event"
	"go-point-counter/internal/haptics"
	"go-point-counter/internal/input"
	"go-point-counter/internal/interfaces"
	"go-point-counter/internal/system"
	"go-point-counter/pkg/render"
	"go-point-counter/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keySwipes = map[ebiten.Key]event.Direction{
	ebiten.KeyArrowUp:    event.Up,
	ebiten.KeyArrowDown:  event.Down,
	ebiten.KeyArrowLeft:  event.Left,
	ebiten.KeyArrowRight: event.Right,
}

type AppGame struct {
	manager  *system.Manager
	surface  *render.EbitenSurface
	counter  interfaces.Application
	gestures *input.GestureRecognizer
	touchID  ebiten.TouchID
	touching bool
	started  bool
}

func (a *AppGame) Update() error {
	if !a.started {
		a.manager.Switch(a.counter)
		a.started = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, dir := range keySwipes {
		if inpututil.IsKeyJustPressed(key) {
			a.manager.Dispatch(event.Swipe(dir))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.manager.Dispatch(event.Touch(config.Center, config.Center))
	}
	a.pollMouse()
	a.pollTouch()
	a.manager.Update()
	return nil
}

func (a *AppGame) pollMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.gestures.Press(devicePoint(ebiten.CursorPosition()))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if ev, ok := a.gestures.Release(devicePoint(ebiten.CursorPosition())); ok {
			a.manager.Dispatch(ev)
		}
	}
}

func (a *AppGame) pollTouch() {
	if !a.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return
		}
		a.touchID = ids[0]
		a.touching = true
		a.gestures.Press(devicePoint(ebiten.TouchPosition(a.touchID)))
		return
	}
	if inpututil.IsTouchJustReleased(a.touchID) {
		a.touching = false
		if ev, ok := a.gestures.Release(devicePoint(inpututil.TouchPositionInPreviousTick(a.touchID))); ok {
			a.manager.Dispatch(ev)
		}
	}
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(a.surface.Background())
	a.surface.Blit(screen, a.manager.Asleep())
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.DisplayWidth, config.DisplayHeight
}

func devicePoint(x, y int) (int, int) {
	return utils.Clamp(x, 0, config.DisplayWidth-1), utils.Clamp(y, 0, config.DisplayHeight-1)
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

	surface, err := render.NewEbitenSurface(config.DisplayWidth, config.DisplayHeight, settings.FontSize, app.DefaultPalette())
	if err != nil {
		log.Fatal(err)
	}

	var pulser interfaces.Haptics = haptics.Nop{}
	if settings.Haptics {
		buzzer := haptics.NewBuzzer(config.HapticRate, config.HapticFrequency, config.HapticDuration)
		if err := buzzer.Initialize(); err == nil {
			pulser = buzzer
			defer buzzer.Close()
		}
	}

	clock := system.NewRTC()
	manager := system.NewManager(clock, config.SleepTimeout)
	manager.Debug = *debug

	game := &AppGame{
		manager: manager,
		surface: surface,
		counter: app.New(app.Deps{
			Surface: surface,
			Clock:   clock,
			Haptics: pulser,
			System:  manager,
			Debug:   *debug,
		}),
		gestures: input.NewGestureRecognizer(config.SwipeThreshold),
	}

	if icon, err := assets.Icon(); err != nil {
		log.Printf("WARNING: %v", err)
	} else {
		ebiten.SetWindowIcon([]image.Image{icon})
	}
	ebiten.SetWindowSize(config.DisplayWidth*settings.Scale, config.DisplayHeight*settings.Scale)
	ebiten.SetWindowTitle(config.AppName)
	ebiten.SetTPS(settings.FPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
