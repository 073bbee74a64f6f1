package factory

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Class is a registrable constructor. The factory compares classes by pointer, so keep
// the *Class returned by NewClass around to remove it later.
type Class struct {
	name string
	typ  reflect.Type
	arg  reflect.Type
	ctor func(arg any) (any, error)
}

// NewClass wraps a constructor producing T from an argument of type A.
func NewClass[T any, A any](ctor func(A) T) *Class {
	return NewClassE(func(arg A) (T, error) {
		return ctor(arg), nil
	})
}

// NewClassE is NewClass for constructors that can fail.
func NewClassE[T any, A any](ctor func(A) (T, error)) *Class {
	var (
		typ = reflect.TypeOf((*T)(nil)).Elem()
		arg = reflect.TypeOf((*A)(nil)).Elem()
	)

	return &Class{
		name: typeName(typ),
		typ:  typ,
		arg:  arg,
		ctor: func(v any) (any, error) {
			var a A
			if v != nil {
				cast, ok := v.(A)
				if !ok {
					return nil, errors.Wrapf(ErrTypeMismatch, "argument for %s: want %s, got %T", typeName(typ), arg, v)
				}
				a = cast
			}

			return ctor(a)
		},
	}
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

func (cls *Class) Name() string {
	return cls.name
}

// Type is the type the constructor produces.
func (cls *Class) Type() reflect.Type {
	return cls.typ
}

func (cls *Class) ArgType() reflect.Type {
	return cls.arg
}

// New builds one instance. A nil arg stands for the zero value of the argument type.
func (cls *Class) New(arg any) (any, error) {
	return cls.ctor(arg)
}

func (cls *Class) String() string {
	return fmt.Sprintf("%s(%s)", cls.name, cls.arg)
}
