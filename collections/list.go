package collections

import (
	list "github.com/bahlo/generic-list-go"

	"github.com/viant/ownly"
)

// List returns an owned linked sequence converting each element with the
// non-consuming capability, front to back; nil in, nil out.
func List[O any, T ownly.ToOwned[O]](in *list.List[T]) *list.List[O] {
	if in == nil {
		return nil
	}
	ret := list.New[O]()
	for elem := in.Front(); elem != nil; elem = elem.Next() {
		ret.PushBack(elem.Value.ToOwned())
	}
	return ret
}

// ListInto converts each element of the linked sequence in place with the
// consuming capability, reusing its nodes, and returns the input list.
func ListInto[T ownly.IntoOwned[T]](in *list.List[T]) *list.List[T] {
	if in == nil {
		return nil
	}
	for elem := in.Front(); elem != nil; elem = elem.Next() {
		elem.Value = elem.Value.IntoOwned()
	}
	return in
}

// ListFunc returns an owned linked sequence converting each element with fn.
func ListFunc[T, O any](in *list.List[T], fn func(T) O) *list.List[O] {
	if in == nil {
		return nil
	}
	ret := list.New[O]()
	for elem := in.Front(); elem != nil; elem = elem.Next() {
		ret.PushBack(fn(elem.Value))
	}
	return ret
}
