package ecs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentTypeOf_Stable(t *testing.T) {
	require.Same(t, ComponentTypeOf[Position](), ComponentTypeOf[Position]())
	require.NotSame(t, ComponentTypeOf[Position](), ComponentTypeOf[Velocity]())
	require.NotEqual(t, ComponentTypeOf[Position]().Id, ComponentTypeOf[Velocity]().Id)
}

func TestComponentTypeOf_DistinctNamedTypes(t *testing.T) {
	// same underlying type, still different components
	type Width float64
	type Height float64

	require.NotSame(t, ComponentTypeOf[Width](), ComponentTypeOf[Height]())
}

func TestComponentTypeOf_ZeroSized(t *testing.T) {
	require.True(t, ComponentTypeOf[Player]().ZeroSized)
	require.False(t, ComponentTypeOf[Position]().ZeroSized)
}

func TestComponentTypeOf_RejectsPointers(t *testing.T) {
	require.Panics(t, func() { ComponentTypeOf[*Position]() })
}

func TestComponentTypeOf_Concurrent(t *testing.T) {
	type Concurrent struct{ Value int }

	var wg sync.WaitGroup
	results := make([]*ComponentType, 16)

	for idx := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[idx] = ComponentTypeOf[Concurrent]()
		}()
	}

	wg.Wait()

	for _, result := range results {
		require.Same(t, results[0], result)
	}
}
