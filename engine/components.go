package engine

import (
	"image/color"
)

// Name labels an entity for logs and debugging. Names need not be unique.
type Name string

func (n Name) String() string {
	return string(n)
}

// Sprite draws a filled rectangle of Width x Height world units,
// centered on the entities physics.Transform.
type Sprite struct {
	Color  color.RGBA
	Width  float64
	Height float64
}
