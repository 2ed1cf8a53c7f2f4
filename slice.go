package ownly

// Slice returns an owned sequence, converting each element in order with the
// non-consuming capability; nil in, nil out. The owned element type has to be
// supplied explicitly: Slice[Cow](values).
func Slice[O any, T ToOwned[O]](in []T) []O {
	if in == nil {
		return nil
	}
	ret := make([]O, len(in))
	for i := range in {
		ret[i] = in[i].ToOwned()
	}
	return ret
}

// SliceInto converts each element in place with the consuming capability and
// returns the input slice, reusing its backing array.
func SliceInto[T IntoOwned[T]](in []T) []T {
	for i := range in {
		in[i] = in[i].IntoOwned()
	}
	return in
}

// SliceFunc returns an owned sequence converting each element with fn,
// preserving order; nil in, nil out.
func SliceFunc[T, O any](in []T, fn func(T) O) []O {
	if in == nil {
		return nil
	}
	ret := make([]O, len(in))
	for i := range in {
		ret[i] = fn(in[i])
	}
	return ret
}
