// pkg/hexagon/hexagon.go
package hexagon

import "math"

// Point is a position in device pixels.
type Point struct {
	X, Y int
}

// Outline holds the six corners of a regular hexagon in drawing order.
type Outline [6]Point

// Vertex returns corner i of the hexagon centred at center.
// Corner 0 sits at -30°, the rest follow clockwise on screen every 60°.
// Coordinates are truncated toward zero, not rounded.
func Vertex(center Point, radius, i int) Point {
	angle := math.Pi / 180 * float64(60*i-30)
	return Point{
		X: int(float64(center.X) + float64(radius)*math.Cos(angle)),
		Y: int(float64(center.Y) + float64(radius)*math.Sin(angle)),
	}
}

// NewOutline computes all six corners once.
func NewOutline(center Point, radius int) Outline {
	var o Outline
	for i := range o {
		o[i] = Vertex(center, radius, i)
	}
	return o
}

// Edge returns the segment from corner i to the next corner, wrapping after the last.
func (o Outline) Edge(i int) (Point, Point) {
	return o[i], o[(i+1)%len(o)]
}
