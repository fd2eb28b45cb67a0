package ecs

import (
	"iter"
	"maps"

	"github.com/oliverbestmann/willengine/internal/set"
)

// store maps entities to the component values of one type T.
// All operations are total, removing an absent value is a no-op.
type store[T any] interface {
	Has(entityId EntityId) bool

	// Get returns the value of the entity, if any.
	Get(entityId EntityId) (*T, bool)

	// Upsert returns the value of the entity, inserting the zero value if
	// the entity does not yet have one.
	Upsert(entityId EntityId) *T

	// Insert sets the value of the entity. An existing value is overwritten in place.
	Insert(entityId EntityId, value T) *T

	Remove(entityId EntityId)

	Len() int

	// Entities iterates all entities with a value, in no particular order.
	Entities() iter.Seq[EntityId]
}

func newStore[T any](componentType *ComponentType) store[T] {
	if componentType.ZeroSized {
		return &tagStore[T]{}
	}

	return &mapStore[T]{values: map[EntityId]*T{}}
}

// mapStore keeps every value in its own allocation. A pointer returned
// by the store stays valid until the value is removed.
type mapStore[T any] struct {
	values map[EntityId]*T
}

func (s *mapStore[T]) Has(entityId EntityId) bool {
	_, ok := s.values[entityId]
	return ok
}

func (s *mapStore[T]) Get(entityId EntityId) (*T, bool) {
	value, ok := s.values[entityId]
	return value, ok
}

func (s *mapStore[T]) Upsert(entityId EntityId) *T {
	if value, ok := s.values[entityId]; ok {
		return value
	}

	value := new(T)
	s.values[entityId] = value
	return value
}

func (s *mapStore[T]) Insert(entityId EntityId, value T) *T {
	target := s.Upsert(entityId)
	*target = value
	return target
}

func (s *mapStore[T]) Remove(entityId EntityId) {
	delete(s.values, entityId)
}

func (s *mapStore[T]) Len() int {
	return len(s.values)
}

func (s *mapStore[T]) Entities() iter.Seq[EntityId] {
	return maps.Keys(s.values)
}

// tagStore holds zero sized components. Only membership is tracked,
// every entity shares the same (empty) value.
type tagStore[T any] struct {
	dummyValue T
	entities   set.Set[EntityId]
}

func (s *tagStore[T]) Has(entityId EntityId) bool {
	return s.entities.Has(entityId)
}

func (s *tagStore[T]) Get(entityId EntityId) (*T, bool) {
	if !s.entities.Has(entityId) {
		return nil, false
	}

	return &s.dummyValue, true
}

func (s *tagStore[T]) Upsert(entityId EntityId) *T {
	s.entities.Insert(entityId)
	return &s.dummyValue
}

func (s *tagStore[T]) Insert(entityId EntityId, _ T) *T {
	return s.Upsert(entityId)
}

func (s *tagStore[T]) Remove(entityId EntityId) {
	s.entities.Remove(entityId)
}

func (s *tagStore[T]) Len() int {
	return s.entities.Len()
}

func (s *tagStore[T]) Entities() iter.Seq[EntityId] {
	return s.entities.Values()
}
