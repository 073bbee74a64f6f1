package factory

import (
	"reflect"
)

// Base is the requirement every registered class must satisfy.
//
// An interface base is satisfied by classes whose type implements it. A concrete base is
// satisfied by struct types embedding it, directly or through other embedded structs,
// by value or by pointer. A concrete base never satisfies itself.
type Base struct {
	typ reflect.Type
}

// BaseOf returns the requirement for B. B may be an interface type.
func BaseOf[B any]() Base {
	return Base{typ: reflect.TypeOf((*B)(nil)).Elem()}
}

func BaseType(t reflect.Type) Base {
	return Base{typ: t}
}

func (b Base) Type() reflect.Type {
	return b.typ
}

func (b Base) IsZero() bool {
	return b.typ == nil
}

func (b Base) Name() string {
	if b.typ == nil {
		return ""
	}

	t := b.typ
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func (b Base) String() string {
	if b.typ == nil {
		return "<none>"
	}
	return b.typ.String()
}

func (b Base) Satisfied(cls *Class) bool {
	if b.typ == nil || cls == nil || cls.typ == nil {
		return false
	}

	if b.typ.Kind() == reflect.Interface {
		return cls.typ.Implements(b.typ)
	}

	base := b.typ
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	return descends(cls.typ, base, map[reflect.Type]bool{})
}

func descends(t, base reflect.Type, seen map[reflect.Type]bool) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct || seen[t] {
		return false
	}
	seen[t] = true

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}

		ft := field.Type
		if ft == base || (ft.Kind() == reflect.Ptr && ft.Elem() == base) {
			return true
		}

		if descends(ft, base, seen) {
			return true
		}
	}

	return false
}
