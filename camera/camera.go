// Package camera maps world coordinates to screen pixels.
package camera

import "github.com/jakecoffman/cp/v2"

// Projection shows the World rectangle on a screen of the given size.
// World coordinates point up, screen coordinates point down.
type Projection struct {
	World        cp.BB
	ScreenWidth  int
	ScreenHeight int
}

func (p Projection) scale() cp.Vector {
	width := p.World.R - p.World.L
	height := p.World.T - p.World.B

	if width == 0 || height == 0 {
		return cp.Vector{}
	}

	return cp.Vector{
		X: float64(p.ScreenWidth) / width,
		Y: float64(p.ScreenHeight) / height,
	}
}

// ToScreen converts a point in world space into pixel coordinates.
func (p Projection) ToScreen(point cp.Vector) (float64, float64) {
	scale := p.scale()

	x := (point.X - p.World.L) * scale.X
	y := (p.World.T - point.Y) * scale.Y

	return x, y
}

// SizeToScreen converts a size in world units into pixels.
func (p Projection) SizeToScreen(size cp.Vector) (float64, float64) {
	scale := p.scale()
	return size.X * scale.X, size.Y * scale.Y
}

// ToWorld converts pixel coordinates back into world space.
func (p Projection) ToWorld(x, y float64) cp.Vector {
	scale := p.scale()
	if scale.X == 0 || scale.Y == 0 {
		return cp.Vector{}
	}

	return cp.Vector{
		X: p.World.L + x/scale.X,
		Y: p.World.T - y/scale.Y,
	}
}
