package ecs

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(fn func(callback func(EntityId))) []EntityId {
	var result []EntityId
	fn(func(e EntityId) { result = append(result, e) })
	return result
}

func TestForEach_Intersection(t *testing.T) {
	w := NewWorld()

	e1 := w.Create()
	Get[Position](w, e1)

	e2 := w.Create()
	Get[Position](w, e2)
	Get[Velocity](w, e2)

	e3 := w.Create()
	Get[Velocity](w, e3)

	result := collect(func(cb func(EntityId)) { ForEach2[Position, Velocity](w, cb) })
	require.Equal(t, []EntityId{e2}, result)
}

func TestForEach_AnchoredOnFirstType(t *testing.T) {
	w := NewWorld()

	// has both, but is reported only through the store of the first type
	e := w.Create()
	Get[Position](w, e)
	Get[Velocity](w, e)

	onlyVelocity := w.Create()
	Get[Velocity](w, onlyVelocity)

	require.Equal(t,
		[]EntityId{e},
		collect(func(cb func(EntityId)) { ForEach2[Position, Velocity](w, cb) }),
	)

	require.ElementsMatch(t,
		[]EntityId{e, onlyVelocity},
		collect(func(cb func(EntityId)) { ForEach[Velocity](w, cb) }),
	)
}

func TestForEach_EmptyStoreIsNoop(t *testing.T) {
	type NeverWritten struct{ Value int }

	w := NewWorld()
	Get[Position](w, w.Create())

	var calls int
	ForEach[NeverWritten](w, func(EntityId) { calls++ })
	ForEach2[NeverWritten, Position](w, func(EntityId) { calls++ })

	require.Zero(t, calls)
	require.Equal(t, 1, w.StoreCount())
}

func TestForEach_MissingRestStore(t *testing.T) {
	type NeverWritten struct{ Value int }

	w := NewWorld()
	Get[Position](w, w.Create())

	var calls int
	ForEach2[Position, NeverWritten](w, func(EntityId) { calls++ })
	require.Zero(t, calls)
	require.Equal(t, 1, w.StoreCount())
}

func TestForEach_ThreeAndFour(t *testing.T) {
	w := NewWorld()

	all := w.Create()
	Get[Position](w, all)
	Get[Velocity](w, all)
	Get[Health](w, all)
	Get[Player](w, all)

	noPlayer := w.Create()
	Get[Position](w, noPlayer)
	Get[Velocity](w, noPlayer)
	Get[Health](w, noPlayer)

	require.ElementsMatch(t,
		[]EntityId{all, noPlayer},
		collect(func(cb func(EntityId)) { ForEach3[Position, Velocity, Health](w, cb) }),
	)

	require.Equal(t,
		[]EntityId{all},
		collect(func(cb func(EntityId)) { ForEach4[Position, Velocity, Health, Player](w, cb) }),
	)

	require.Equal(t,
		[]EntityId{all},
		collect(func(cb func(EntityId)) { ForEach2[Player, Position](w, cb) }),
	)
}

func TestForEach_MutateOtherStores(t *testing.T) {
	w := NewWorld()

	for range 10 {
		e := w.Create()
		Get[Position](w, e)
		Get[Velocity](w, e).X = 1
	}

	ForEach2[Position, Velocity](w, func(e EntityId) {
		Get[Position](w, e).X += Get[Velocity](w, e).X
		Get[Health](w, e).Value = 1
		Drop[Velocity](w, e)
	})

	require.Equal(t, 0, Len[Velocity](w))
	require.Equal(t, 10, Len[Health](w))

	ForEach[Position](w, func(e EntityId) {
		require.Equal(t, 1.0, Get[Position](w, e).X)
	})
}

func TestForEach_DestroyWhileIterating(t *testing.T) {
	w := NewWorld()

	for range 10 {
		Get[Position](w, w.Create())
	}

	var visited []EntityId
	ForEach[Position](w, func(e EntityId) {
		visited = append(visited, e)
		w.Destroy(e)
	})

	require.Len(t, visited, 10)
	require.Equal(t, 0, Len[Position](w))
}

func TestQuery_StopsEarly(t *testing.T) {
	w := NewWorld()
	for range 10 {
		Get[Position](w, w.Create())
	}

	var count int
	for range Query[Position](w) {
		count++
		if count == 3 {
			break
		}
	}

	require.Equal(t, 3, count)
}

func TestQuery_RestStoreCreatedLater(t *testing.T) {
	w := NewWorld()

	for range 10 {
		Get[Position](w, w.Create())
	}

	query := Query[Position](w, ComponentTypeOf[Velocity]())
	require.Empty(t, slices.Collect(query))

	for e := range Query[Position](w) {
		Get[Velocity](w, e)
	}

	// stores are resolved when iterating, not when building the query
	require.Len(t, slices.Collect(query), 10)
}

func TestMatching_Sorted(t *testing.T) {
	w := NewWorld()

	var expected []uint32
	for idx := range 20 {
		e := w.Create()
		Get[Position](w, e)

		if idx%3 == 0 {
			Get[Player](w, e)
			expected = append(expected, uint32(e))
		}
	}

	bitmap := Matching[Position](w, ComponentTypeOf[Player]())
	require.Equal(t, expected, bitmap.ToArray())

	type NeverWritten struct{}
	require.True(t, Matching[NeverWritten](w).IsEmpty())
}

func TestScenario(t *testing.T) {
	w := NewWorld()

	e1 := w.Create()
	require.Equal(t, EntityId(1), e1)
	Get[Position](w, e1).X = 10

	e2 := w.Create()
	require.Equal(t, EntityId(2), e2)
	Get[Position](w, e2).X = 20
	Get[Velocity](w, e2).X = 1

	require.Equal(t,
		[]EntityId{e2},
		collect(func(cb func(EntityId)) { ForEach2[Position, Velocity](w, cb) }),
	)

	w.Destroy(e2)

	require.False(t, Has[Position](w, e2))
	require.Empty(t, collect(func(cb func(EntityId)) { ForEach2[Position, Velocity](w, cb) }))
	require.Equal(t, 10.0, Get[Position](w, e1).X)
}

func BenchmarkForEach2(b *testing.B) {
	w := NewWorld()

	for idx := range 10_000 {
		e := w.Create()
		Get[Position](w, e)

		if idx%2 == 0 {
			Get[Velocity](w, e)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		ForEach2[Position, Velocity](w, func(e EntityId) {
			_ = e
		})
	}
}
