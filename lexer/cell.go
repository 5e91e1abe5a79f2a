package lexer

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Storage budget of a cell. Every token representation in this system
// is a span (two ints) or smaller, so the footprint of a buffered token
// is constant no matter which kind is stored.
const (
	cellSize  = 16
	cellAlign = 8
)

// cell holds one token value of any concrete kind in fixed inline
// storage, tagged with the identity of the stored type. The payload
// bytes are invisible to the garbage collector, so pointer-carrying
// types are rejected at construction along with oversized ones.
type cell struct {
	data [cellSize]byte
	typ  reflect.Type
}

func newCell[T Token](tok T) cell {
	typ := reflect.TypeFor[T]()
	if size := unsafe.Sizeof(tok); size > cellSize {
		panic(fmt.Errorf("token type %v is %d bytes, over the %d-byte cell budget", typ, size, cellSize))
	}
	if align := unsafe.Alignof(tok); align > cellAlign {
		panic(fmt.Errorf("token type %v requires alignment %d, over the cell's %d", typ, align, cellAlign))
	}
	if hasPointers(typ) {
		panic(fmt.Errorf("token type %v contains pointers, cannot be stored inline", typ))
	}
	c := cell{
		typ: typ,
	}
	*(*T)(unsafe.Pointer(&c.data)) = tok
	return c
}

// is reports whether the stored value is of type T, without touching
// the payload bytes.
func is[T Token](c *cell) bool {
	return c.typ == reflect.TypeFor[T]()
}

// ref reinterprets the payload as T. The type must have been confirmed
// with is first; this is never exposed unchecked outside the engine.
func ref[T Token](c *cell) *T {
	return (*T)(unsafe.Pointer(&c.data))
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false

	case reflect.Array:
		return hasPointers(t.Elem())

	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false

	}
	return true
}
