// pkg/render/surface.go
package render

// Surface is the drawing contract the counter app needs from a display.
// Coordinates are device pixels with the origin in the top-left corner.
type Surface interface {
	// Clear fills the whole drawable area with the background colour.
	Clear()
	// Fill paints a rectangle with the background colour.
	Fill(x, y, w, h int)
	// MeasureText returns the box the string would occupy.
	MeasureText(s string) (w, h int)
	// DrawText draws s centred horizontally in [x, x+width) with its top at y.
	DrawText(s string, x, y, width int)
	// DrawLine strokes a segment in the outline colour.
	DrawLine(x1, y1, x2, y2, width int)
}

// CenteredX returns the left edge of a w-wide box centred in [x, x+width).
func CenteredX(x, width, w int) int {
	return x + (width-w)/2
}
