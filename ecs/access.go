package ecs

import (
	"fmt"
	"log/slog"
)

// Get returns a pointer to the T component of the entity. If the entity does not
// have a T yet, the zero value is attached and returned. This makes Get usable as
// a setter:
//
//	ecs.Get[Position](w, e).X = 5
//
// but it also means that reading a component the entity never had attaches one.
// Use TryGet for a lookup without side effects. If the World was created with
// WithStrictGet, Get panics instead of attaching a new value.
//
// The pointer stays valid until the component is removed from the entity.
func Get[T any](w *World, entityId EntityId) *T {
	if w.strictGet {
		value, ok := TryGet[T](w, entityId)
		if !ok {
			panic(fmt.Sprintf("entity %s has no component %s", entityId, ComponentTypeOf[T]()))
		}

		return value
	}

	return GetOrInsertDefault[T](w, entityId)
}

// GetOrInsertDefault returns a pointer to the T component of the entity,
// attaching the zero value of T first if the entity does not have one.
func GetOrInsertDefault[T any](w *World, entityId EntityId) *T {
	store := ensureStoreOf[T](w)

	if value, ok := store.Get(entityId); ok {
		return value
	}

	if w.debugEnabled() {
		w.logger.Debug("Attaching default component",
			slog.Any("entity", entityId),
			slog.Any("component", ComponentTypeOf[T]()),
		)
	}

	return store.Upsert(entityId)
}

// TryGet returns a pointer to the T component of the entity, if it has one.
// It never modifies the World.
func TryGet[T any](w *World, entityId EntityId) (*T, bool) {
	store, ok := storeOf[T](w)
	if !ok {
		return nil, false
	}

	return store.Get(entityId)
}

// Insert attaches the given value to the entity, replacing any previous value in place.
func Insert[T any](w *World, entityId EntityId, value T) *T {
	return ensureStoreOf[T](w).Insert(entityId, value)
}

// Has reports whether the entity has a T component.
// Testing for a type that was never written to does not create a store.
func Has[T any](w *World, entityId EntityId) bool {
	return w.HasComponent(entityId, ComponentTypeOf[T]())
}

// Drop removes the T component from the entity, if it has one.
func Drop[T any](w *World, entityId EntityId) {
	if store, ok := storeOf[T](w); ok {
		store.Remove(entityId)
	}
}

// Len returns the number of entities with a T component.
func Len[T any](w *World) int {
	store, ok := storeOf[T](w)
	if !ok {
		return 0
	}

	return store.Len()
}
