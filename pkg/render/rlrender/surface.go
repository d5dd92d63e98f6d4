// Package rlrender draws the counter screen with raylib.
package rlrender

import (
	"image/color"

	"go-point-counter/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const textSpacing = 1

// Surface renders into a raylib render texture that keeps its contents
// between frames. Drawing calls must happen between Begin and End.
type Surface struct {
	target     rl.RenderTexture2D
	font       rl.Font
	fontSize   float32
	background rl.Color
	text       rl.Color
	outline    rl.Color
}

var _ render.Surface = (*Surface)(nil)

// New allocates the render texture. raylib's window must already be open.
func New(width, height int, fontSize float32, palette render.Palette) *Surface {
	s := &Surface{
		target:     rl.LoadRenderTexture(int32(width), int32(height)),
		font:       rl.GetFontDefault(),
		fontSize:   fontSize,
		background: colorToRL(palette.Background),
		text:       colorToRL(palette.Text),
		outline:    colorToRL(palette.Outline),
	}
	s.Begin()
	s.Clear()
	s.End()
	return s
}

// Begin redirects raylib drawing into the surface texture.
func (s *Surface) Begin() { rl.BeginTextureMode(s.target) }

// End restores drawing to the window.
func (s *Surface) End() { rl.EndTextureMode() }

func (s *Surface) Clear() {
	rl.ClearBackground(s.background)
}

func (s *Surface) Fill(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), s.background)
}

func (s *Surface) MeasureText(str string) (int, int) {
	size := rl.MeasureTextEx(s.font, str, s.fontSize, textSpacing)
	return int(size.X + 0.5), int(size.Y + 0.5)
}

func (s *Surface) DrawText(str string, x, y, width int) {
	w, _ := s.MeasureText(str)
	pos := rl.NewVector2(float32(render.CenteredX(x, width, w)), float32(y))
	rl.DrawTextEx(s.font, str, pos, s.fontSize, textSpacing, s.text)
}

func (s *Surface) DrawLine(x1, y1, x2, y2, width int) {
	rl.DrawLineEx(rl.NewVector2(float32(x1), float32(y1)), rl.NewVector2(float32(x2), float32(y2)), float32(width), s.outline)
}

// Blit draws the texture to the window at the given scale. Render textures
// are stored upside down, hence the negative source height.
func (s *Surface) Blit(scale float32, asleep bool) {
	tex := s.target.Texture
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	dst := rl.NewRectangle(0, 0, float32(tex.Width)*scale, float32(tex.Height)*scale)
	tint := rl.White
	if asleep {
		tint = colorToRL(render.SleepTint())
	}
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, tint)
}

// Unload releases the render texture.
func (s *Surface) Unload() {
	rl.UnloadRenderTexture(s.target)
}

func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
