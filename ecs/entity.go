package ecs

import (
	"log/slog"
	"strconv"
)

// EntityId identifies an entity within a World.
type EntityId uint32

// NoEntityId is never returned by World.Create.
const NoEntityId = EntityId(0)

func (e EntityId) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e EntityId) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

// entityAllocator hands out strictly increasing ids. Ids are never recycled,
// running out of ids is a fatal condition.
type entityAllocator struct {
	last EntityId
}

func (a *entityAllocator) Next() EntityId {
	a.last += 1

	if a.last == NoEntityId {
		panic("entity id space exhausted")
	}

	return a.last
}
