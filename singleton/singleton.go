package singleton

import (
	"reflect"
	"sync"
)

var objects sync.Map

func typeKey[K any]() reflect.Type {
	return reflect.TypeOf((*K)(nil)).Elem()
}

// Of returns the process-wide value filed under the type K, building it with ctor on
// first use. Racing first callers may each run ctor; only one result is kept.
func Of[K any, T any](ctor func() T) T {
	tt := typeKey[K]()

	if created, ok := objects.Load(tt); ok {
		if v, ok := created.(T); ok {
			return v
		}
		panic("invalid instance object")
	}

	created, _ := objects.LoadOrStore(tt, ctor())
	v, ok := created.(T)
	if !ok {
		panic("invalid instance object")
	}
	return v
}

// New files the value under its own type.
func New[T any](ctor func() T) T {
	return Of[T, T](ctor)
}

// Reset forgets the value filed under K.
func Reset[K any]() {
	objects.Delete(typeKey[K]())
}
