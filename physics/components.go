package physics

import (
	"github.com/jakecoffman/cp/v2"
)

// Transform is where an entity is drawn.
type Transform struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// Rigidbody moves an entity by Velocity every step.
type Rigidbody struct {
	Position cp.Vector
	Velocity cp.Vector
}

// BoxCollider keeps the box spanned by HalfExtents around the
// rigidbody position inside the world bounds.
type BoxCollider struct {
	HalfExtents cp.Vector
}
