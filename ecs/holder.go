package ecs

// storage is the type erased view the World has on a store.
// It deliberately knows nothing about the values, only about membership.
type storage interface {
	HasEntity(entityId EntityId) bool
	RemoveEntity(entityId EntityId)
}

// holder wraps the store of one component type T.
type holder[T any] struct {
	store store[T]
}

func (h *holder[T]) HasEntity(entityId EntityId) bool {
	return h.store.Has(entityId)
}

func (h *holder[T]) RemoveEntity(entityId EntityId) {
	h.store.Remove(entityId)
}
