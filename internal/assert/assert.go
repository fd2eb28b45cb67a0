package assert

import (
	"fmt"
	"reflect"
)

// IsComponentType panics if t can not be used as a component value type.
// Components are plain values, a pointer or interface would alias state
// between entities.
func IsComponentType(t reflect.Type) {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		panic(fmt.Sprintf("component type must not be a pointer, got %s", t))

	case reflect.Interface:
		panic(fmt.Sprintf("component type must be a concrete type, got interface %s", t))
	}
}
