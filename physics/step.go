package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/willengine/ecs"
)

// WorldHalfHeight is half the height of the visible world in world units.
// The width follows from the aspect ratio of the window.
const WorldHalfHeight = 100.0

// WorldBounds returns the visible world for a window of the given size, centered at the origin.
func WorldBounds(windowWidth, windowHeight int) cp.BB {
	if windowWidth <= 0 || windowHeight <= 0 {
		return cp.NewBBForExtents(cp.Vector{}, WorldHalfHeight, WorldHalfHeight)
	}

	aspectRatio := float64(windowWidth) / float64(windowHeight)
	return cp.NewBBForExtents(cp.Vector{}, WorldHalfHeight*aspectRatio, WorldHalfHeight)
}

// Step advances every entity with a Rigidbody, a BoxCollider and a Transform by one tick.
// The velocity is added to the position, the result is copied to the Transform and
// clamped so that the collider stays within bounds. Hitting a wall stops the movement
// along that axis.
func Step(w *ecs.World, bounds cp.BB) {
	ecs.ForEach3[Rigidbody, BoxCollider, Transform](w, func(entityId ecs.EntityId) {
		rb := ecs.Get[Rigidbody](w, entityId)
		collider := ecs.Get[BoxCollider](w, entityId)
		transform := ecs.Get[Transform](w, entityId)

		rb.Position = rb.Position.Add(rb.Velocity)

		halfWidth := collider.HalfExtents.X
		halfHeight := collider.HalfExtents.Y

		if x, clamped := clampAxis(rb.Position.X, bounds.L+halfWidth, bounds.R-halfWidth); clamped {
			rb.Position.X = x
			rb.Velocity.X = 0
		}

		if y, clamped := clampAxis(rb.Position.Y, bounds.B+halfHeight, bounds.T-halfHeight); clamped {
			rb.Position.Y = y
			rb.Velocity.Y = 0
		}

		transform.X = rb.Position.X
		transform.Y = rb.Position.Y
	})
}

// clampAxis clamps value into [lo, hi]. A box larger than the world is pinned to lo.
func clampAxis(value, lo, hi float64) (float64, bool) {
	switch {
	case value < lo:
		return lo, true
	case value > hi:
		return max(lo, hi), true
	default:
		return value, false
	}
}

// Overlapping reports whether the colliders of both entities intersect.
// Entities without a Rigidbody or BoxCollider never overlap.
func Overlapping(w *ecs.World, a, b ecs.EntityId) bool {
	boxA, okA := boundsOf(w, a)
	boxB, okB := boundsOf(w, b)
	return okA && okB && boxA.Intersects(boxB)
}

func boundsOf(w *ecs.World, entityId ecs.EntityId) (cp.BB, bool) {
	rb, ok := ecs.TryGet[Rigidbody](w, entityId)
	if !ok {
		return cp.BB{}, false
	}

	collider, ok := ecs.TryGet[BoxCollider](w, entityId)
	if !ok {
		return cp.BB{}, false
	}

	return cp.NewBBForExtents(rb.Position, collider.HalfExtents.X, collider.HalfExtents.Y), true
}
