package ecs

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"reflect"
	"sync/atomic"

	"github.com/oliverbestmann/willengine/internal/assert"
)

type ComponentTypeId uint16

// ComponentType is the process wide key of a component value type.
// There is exactly one ComponentType per Go type, pointers to
// it can be compared directly.
type ComponentType struct {
	Id   ComponentTypeId
	Name string
	Type reflect.Type

	// ZeroSized is true for marker components that do not carry any data.
	ZeroSized bool
}

func (c *ComponentType) String() string {
	return c.Name
}

func (c *ComponentType) LogValue() slog.Value {
	return slog.StringValue(c.Name)
}

var componentTypes atomic.Pointer[map[reflect.Type]*ComponentType]

func init() {
	// initialize the lookup table
	componentTypes.Store(&map[reflect.Type]*ComponentType{})
}

// ComponentTypeOf returns the ComponentType of C. Calling it for the same type
// always returns the same pointer. It is safe to call from multiple goroutines.
func ComponentTypeOf[C any]() *ComponentType {
	reflectType := reflect.TypeFor[C]()

	if cached, ok := (*componentTypes.Load())[reflectType]; ok {
		return cached
	}

	assert.IsComponentType(reflectType)

	return ensureComponentType(reflectType)
}

func ensureComponentType(reflectType reflect.Type) *ComponentType {
	for {
		previousTypes := componentTypes.Load()
		if cached, ok := (*previousTypes)[reflectType]; ok {
			return cached
		}

		if len(*previousTypes) >= math.MaxUint16 {
			panic(fmt.Sprintf("too many component types, can not register %s", reflectType))
		}

		newType := &ComponentType{
			Id:        ComponentTypeId(len(*previousTypes) + 1),
			Name:      reflectType.String(),
			Type:      reflectType,
			ZeroSized: reflectType.Size() == 0,
		}

		newTypes := maps.Clone(*previousTypes)
		newTypes[reflectType] = newType

		if componentTypes.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New component type registered",
				slog.String("name", newType.Name),
				slog.Int("id", int(newType.Id)),
			)

			return newType
		}
	}
}
