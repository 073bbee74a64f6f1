package registry

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry keeps an ordered list of values per string key. Values under one key keep
// insertion order and may repeat. A key, once created, is never dropped. Only Append
// and Remove write; the other methods are safe to share under a read lock.
type Registry[T comparable] struct {
	set map[string][]T
}

func (reg *Registry[T]) init() {
	if reg.set == nil {
		reg.set = make(map[string][]T)
	}
}

func (reg *Registry[T]) Append(key string, val T) {
	reg.init()

	reg.set[key] = append(reg.set[key], val)
}

// Remove drops the first occurrence of val under key. ok reports whether the key exists,
// removed whether a value was dropped.
func (reg *Registry[T]) Remove(key string, val T) (removed bool, ok bool) {
	vals, ok := reg.set[key]
	if !ok {
		return false, false
	}

	idx := slices.Index(vals, val)
	if idx < 0 {
		return false, true
	}

	reg.set[key] = slices.Delete(vals, idx, idx+1)
	return true, true
}

// Lookup returns a copy of the values under key.
func (reg *Registry[T]) Lookup(key string) (vals []T, ok bool) {
	vals, ok = reg.set[key]
	if !ok {
		return nil, false
	}

	if vals == nil {
		return []T{}, true
	}
	return slices.Clone(vals), true
}

func (reg *Registry[T]) Has(key string) bool {
	_, ok := reg.set[key]
	return ok
}

func (reg *Registry[T]) Len(key string) int {
	return len(reg.set[key])
}

// Keys returns every key in ascending order.
func (reg *Registry[T]) Keys() []string {
	keys := maps.Keys(reg.set)
	slices.Sort(keys)
	return keys
}

// Size is the number of values across all keys.
func (reg *Registry[T]) Size() int {
	var n int
	for _, vals := range reg.set {
		n += len(vals)
	}
	return n
}
