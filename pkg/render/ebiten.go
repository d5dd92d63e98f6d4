// pkg/render/ebiten.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// EbitenSurface draws into a persistent offscreen image. Nothing is cleared
// between frames, so only regions the app repaints change.
type EbitenSurface struct {
	canvas  *ebiten.Image
	face    font.Face
	ascent  int
	height  int
	palette Palette
}

var _ Surface = (*EbitenSurface)(nil)

// NewEbitenSurface creates a width x height canvas with an embedded Go Regular face.
func NewEbitenSurface(width, height int, fontSize float64, palette Palette) (*EbitenSurface, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	m := face.Metrics()
	s := &EbitenSurface{
		canvas:  ebiten.NewImage(width, height),
		face:    face,
		ascent:  m.Ascent.Ceil(),
		height:  (m.Ascent + m.Descent).Ceil(),
		palette: palette,
	}
	s.Clear()
	return s, nil
}

func (s *EbitenSurface) Clear() {
	s.canvas.Fill(s.palette.Background)
}

func (s *EbitenSurface) Fill(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.canvas, float32(x), float32(y), float32(w), float32(h), s.palette.Background, false)
}

func (s *EbitenSurface) MeasureText(str string) (int, int) {
	return font.MeasureString(s.face, str).Ceil(), s.height
}

func (s *EbitenSurface) DrawText(str string, x, y, width int) {
	w, _ := s.MeasureText(str)
	text.Draw(s.canvas, str, s.face, CenteredX(x, width, w), y+s.ascent, s.palette.Text)
}

func (s *EbitenSurface) DrawLine(x1, y1, x2, y2, width int) {
	vector.StrokeLine(s.canvas, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), s.palette.Outline, true)
}

// Blit copies the canvas onto the ebiten screen, dimmed while asleep.
func (s *EbitenSurface) Blit(screen *ebiten.Image, asleep bool) {
	op := &ebiten.DrawImageOptions{}
	if asleep {
		op.ColorScale.ScaleWithColor(SleepTint())
	}
	screen.DrawImage(s.canvas, op)
}

// Background exposes the clear colour so hosts can paint letterbox bars.
func (s *EbitenSurface) Background() color.Color {
	return s.palette.Background
}
