package ecs

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Query iterates all entities that have a First component and a component of each of
// the rest types. Iteration order is unspecified, every entity is yielded at most once.
//
// The query is driven by the store of First: an entity without a First component is
// never yielded, even if it has all the other types. Put the most selective type
// first. If no entity has ever been given a First component, nothing is yielded
// and no store is created.
//
// While iterating, components of other types may be added or removed freely.
// Removing First components is allowed, adding new ones is not.
func Query[First any](w *World, rest ...*ComponentType) iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		first, ok := storeOf[First](w)
		if !ok {
			return
		}

		// resolved lazily, a store of the rest types might be created while iterating
		others := make([]storage, len(rest))

	entities:
		for entityId := range first.Entities() {
			for idx, componentType := range rest {
				if others[idx] == nil {
					others[idx] = w.stores[componentType]
				}

				// a missing store means that no entity has the component
				if others[idx] == nil || !others[idx].HasEntity(entityId) {
					continue entities
				}
			}

			if !yield(entityId) {
				return
			}
		}
	}
}

// ForEach calls the callback for every entity with an A component.
func ForEach[A any](w *World, callback func(EntityId)) {
	for entityId := range Query[A](w) {
		callback(entityId)
	}
}

// ForEach2 calls the callback for every entity with an A and a B component.
// See Query for the iteration semantics.
func ForEach2[A, B any](w *World, callback func(EntityId)) {
	for entityId := range Query[A](w, ComponentTypeOf[B]()) {
		callback(entityId)
	}
}

// ForEach3 calls the callback for every entity with an A, B and C component.
func ForEach3[A, B, C any](w *World, callback func(EntityId)) {
	query := Query[A](w,
		ComponentTypeOf[B](),
		ComponentTypeOf[C](),
	)

	for entityId := range query {
		callback(entityId)
	}
}

// ForEach4 calls the callback for every entity with an A, B, C and D component.
func ForEach4[A, B, C, D any](w *World, callback func(EntityId)) {
	query := Query[A](w,
		ComponentTypeOf[B](),
		ComponentTypeOf[C](),
		ComponentTypeOf[D](),
	)

	for entityId := range query {
		callback(entityId)
	}
}

// Matching collects the result of Query into a bitmap. Iterating the bitmap
// yields the entities in ascending order.
func Matching[First any](w *World, rest ...*ComponentType) *roaring.Bitmap {
	bitmap := roaring.New()

	for entityId := range Query[First](w, rest...) {
		bitmap.Add(uint32(entityId))
	}

	return bitmap
}
