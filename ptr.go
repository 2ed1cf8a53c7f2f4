package ownly

// Ptr converts an optional or boxed value: nil stays nil, otherwise the
// result rewraps the converted pointee in a fresh allocation.
func Ptr[O any, T ToOwned[O]](p *T) *O {
	if p == nil {
		return nil
	}
	owned := (*p).ToOwned()
	return &owned
}

// PtrInto converts the pointee in place with the consuming capability and
// returns the input pointer, reusing its allocation; nil stays nil.
func PtrInto[T IntoOwned[T]](p *T) *T {
	if p == nil {
		return nil
	}
	*p = (*p).IntoOwned()
	return p
}

// PtrFunc converts an optional or boxed value with fn; nil stays nil.
func PtrFunc[T, O any](p *T, fn func(T) O) *O {
	if p == nil {
		return nil
	}
	owned := fn(*p)
	return &owned
}
