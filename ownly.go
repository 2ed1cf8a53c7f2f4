package ownly

type (
	//ToOwned is the non-consuming conversion capability: it produces an owned
	//counterpart of type O that shares no storage with the receiver, which
	//remains valid and unchanged. Conversions are infallible.
	ToOwned[O any] interface {
		ToOwned() O
	}

	//IntoOwned is the consuming conversion capability: it produces an owned
	//counterpart of type O, transferring already owned storage instead of
	//copying it where possible. The caller must not use the original value
	//afterwards.
	IntoOwned[O any] interface {
		IntoOwned() O
	}
)

// To applies the non-consuming conversion. Methods cannot have extra type
// parameters, hence the capability is also exposed as a top-level function.
func To[O any, T ToOwned[O]](v T) O {
	return v.ToOwned()
}

// Into applies the consuming conversion.
func Into[O any, T IntoOwned[O]](v T) O {
	return v.IntoOwned()
}

// Identity is the conversion for scalar values that hold no references; the
// owned counterpart of such a value is the value itself.
func Identity[T any](v T) T {
	return v
}
