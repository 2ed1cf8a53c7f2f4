package ownly

// CowBytes is a copy-on-write byte buffer. Unlike Cow, even the owned form
// holds mutable storage, so the non-consuming conversion always copies to
// keep the result independent of the input; only the consuming conversion
// may transfer owned storage.
type CowBytes struct {
	value []byte
	owned bool
}

// BorrowedBytes returns a buffer view aliasing b without copying.
func BorrowedBytes(b []byte) CowBytes {
	return CowBytes{value: b}
}

// OwnedBytes wraps b as owned storage; the caller must not retain b.
func OwnedBytes(b []byte) CowBytes {
	return CowBytes{value: b, owned: true}
}

// ToOwned returns an owned counterpart backed by a fresh copy of the content.
func (c CowBytes) ToOwned() CowBytes {
	return CowBytes{value: Bytes(c.value), owned: true}
}

// IntoOwned returns an owned counterpart; owned storage is transferred,
// borrowed content is copied.
func (c CowBytes) IntoOwned() CowBytes {
	if c.owned {
		return c
	}
	return CowBytes{value: Bytes(c.value), owned: true}
}

// Bytes returns the content. The returned slice aliases the value's storage.
func (c CowBytes) Bytes() []byte {
	return c.value
}

// Len returns the content length.
func (c CowBytes) Len() int {
	return len(c.value)
}

// IsOwned returns true if the value owns its storage.
func (c CowBytes) IsOwned() bool {
	return c.owned
}

// IsBorrowed returns true if the value may alias caller storage.
func (c CowBytes) IsBorrowed() bool {
	return !c.owned
}

// Bytes returns an owned copy of b; nil stays nil.
func Bytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	ret := make([]byte, len(b))
	copy(ret, b)
	return ret
}
