package ecs

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
)

// World holds entities and one store per component type that
// has been written to so far.
type World struct {
	entities entityAllocator
	stores   map[*ComponentType]storage

	logger    *slog.Logger
	strictGet bool
}

// NewWorld creates a new, empty World.
func NewWorld(opts ...Option) *World {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return &World{
		stores:    map[*ComponentType]storage{},
		logger:    o.logger,
		strictGet: o.strictGet,
	}
}

// Create returns a new entity id. Ids are strictly increasing, the first
// id is 1. An id is never handed out twice.
func (w *World) Create() EntityId {
	return w.entities.Next()
}

// Destroy removes all components of the entity. This touches every store of the
// world, independent of which components the entity actually has.
// Destroying an unknown entity is a no-op.
func (w *World) Destroy(entityId EntityId) {
	for _, storage := range w.stores {
		storage.RemoveEntity(entityId)
	}
}

// StoreCount returns the number of component stores created so far.
func (w *World) StoreCount() int {
	return len(w.stores)
}

// ComponentTypes returns the types of all stores of this world, ordered by id.
func (w *World) ComponentTypes() []*ComponentType {
	return slices.SortedFunc(maps.Keys(w.stores), func(a, b *ComponentType) int {
		return cmp.Compare(a.Id, b.Id)
	})
}

// HasComponent is the type erased version of Has.
func (w *World) HasComponent(entityId EntityId, componentType *ComponentType) bool {
	storage, ok := w.stores[componentType]
	return ok && storage.HasEntity(entityId)
}

func storeOf[T any](w *World) (store[T], bool) {
	storage, ok := w.stores[ComponentTypeOf[T]()]
	if !ok {
		return nil, false
	}

	return storage.(*holder[T]).store, true
}

func ensureStoreOf[T any](w *World) store[T] {
	componentType := ComponentTypeOf[T]()

	if storage, ok := w.stores[componentType]; ok {
		return storage.(*holder[T]).store
	}

	h := &holder[T]{store: newStore[T](componentType)}
	w.stores[componentType] = h

	w.logger.Debug("Component store created",
		slog.Any("component", componentType),
		slog.Bool("zeroSized", componentType.ZeroSized),
	)

	return h.store
}

func (w *World) debugEnabled() bool {
	return w.logger.Enabled(context.Background(), slog.LevelDebug)
}
