package collections

import (
	"github.com/gammazero/deque"

	"github.com/viant/ownly"
)

// Deque returns an owned double-ended sequence converting each element with
// the non-consuming capability, preserving order; nil in, nil out.
func Deque[O any, T ownly.ToOwned[O]](in *deque.Deque[T]) *deque.Deque[O] {
	if in == nil {
		return nil
	}
	ret := deque.New[O](in.Len())
	for i := 0; i < in.Len(); i++ {
		ret.PushBack(in.At(i).ToOwned())
	}
	return ret
}

// DequeInto converts each element of the double-ended sequence in place with
// the consuming capability, reusing its ring buffer, and returns the input.
func DequeInto[T ownly.IntoOwned[T]](in *deque.Deque[T]) *deque.Deque[T] {
	if in == nil {
		return nil
	}
	for i := 0; i < in.Len(); i++ {
		in.Set(i, in.At(i).IntoOwned())
	}
	return in
}

// DequeFunc returns an owned double-ended sequence converting each element
// with fn, preserving order.
func DequeFunc[T, O any](in *deque.Deque[T], fn func(T) O) *deque.Deque[O] {
	if in == nil {
		return nil
	}
	ret := deque.New[O](in.Len())
	for i := 0; i < in.Len(); i++ {
		ret.PushBack(fn(in.At(i)))
	}
	return ret
}
