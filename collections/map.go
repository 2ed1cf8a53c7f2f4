package collections

import (
	"github.com/viant/ownly"
)

// Map returns an owned map converting each element with the non-consuming
// capability, keys carried over as-is; nil in, nil out. The owned element
// type has to be supplied explicitly: Map[Cow](values).
func Map[K comparable, O any, V ownly.ToOwned[O]](in map[K]V) map[K]O {
	if in == nil {
		return nil
	}
	ret := make(map[K]O, len(in))
	for k, v := range in {
		ret[k] = v.ToOwned()
	}
	return ret
}

// MapInto converts each element with the consuming capability, overwriting
// entries of the input map in place and returning it.
func MapInto[K comparable, V ownly.IntoOwned[V]](in map[K]V) map[K]V {
	for k, v := range in {
		in[k] = v.IntoOwned()
	}
	return in
}

// MapFunc returns an owned map converting keys and elements with the supplied
// functions. Keys that convert to equal values collapse to a single entry,
// last write wins; with a key shape preserving conversion collisions cannot
// occur.
func MapFunc[K, KO comparable, V, VO any](in map[K]V, key func(K) KO, elem func(V) VO) map[KO]VO {
	if in == nil {
		return nil
	}
	ret := make(map[KO]VO, len(in))
	for k, v := range in {
		ret[key(k)] = elem(v)
	}
	return ret
}

// Set is a hash set.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the supplied items.
func NewSet[T comparable](items ...T) Set[T] {
	ret := make(Set[T], len(items))
	for _, item := range items {
		ret.Add(item)
	}
	return ret
}

// Add adds an item.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// Has returns true if the set holds the item.
func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

// SetFunc returns an owned set converting each element with fn. Distinct
// elements that convert to an equal value deduplicate into a single entry.
func SetFunc[T, O comparable](in Set[T], fn func(T) O) Set[O] {
	if in == nil {
		return nil
	}
	ret := make(Set[O], len(in))
	for item := range in {
		ret.Add(fn(item))
	}
	return ret
}
