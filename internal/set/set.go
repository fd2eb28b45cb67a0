package set

import (
	"iter"
	"maps"
)

// Set provides a wrapper around a map[T]struct{}.
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	values map[T]struct{}
}

// Insert adds the value and reports whether it was not yet part of the set.
func (s *Set[T]) Insert(value T) bool {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	if _, exists := s.values[value]; exists {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

// Remove deletes the value and reports whether it was part of the set.
func (s *Set[T]) Remove(value T) bool {
	if _, exists := s.values[value]; !exists {
		return false
	}

	delete(s.values, value)
	return true
}

func (s *Set[T]) Has(value T) bool {
	_, exists := s.values[value]
	return exists
}

// Values iterates the set in no particular order.
// Removing values while iterating is allowed.
func (s *Set[T]) Values() iter.Seq[T] {
	return maps.Keys(s.values)
}

func (s *Set[T]) Len() int {
	return len(s.values)
}

