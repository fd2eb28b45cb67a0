// Package ecs is a small, in-memory entity component store.
//
// Entities are plain integer ids handed out by a World. Any Go value type can be
// attached to an entity as a component, without registering it first:
//
//	w := ecs.NewWorld()
//	player := w.Create()
//	ecs.Get[Position](w, player).X = 10
//
// Every component type gets its own sparse store, created the first time the type
// is written to. The World only knows the stores through a type erased view that can
// answer "does entity e have a value" and "remove the value of e". This is enough to
// destroy entities and to intersect stores in queries:
//
//	ecs.ForEach2[Position, Velocity](w, func(e ecs.EntityId) {
//		pos := ecs.Get[Position](w, e)
//		vel := ecs.Get[Velocity](w, e)
//		pos.X += vel.X
//	})
//
// Queries are anchored on their first component type: only entities in the store of
// the first type are ever visited, the other types are membership tests.
//
// A World is not safe for concurrent use.
package ecs
