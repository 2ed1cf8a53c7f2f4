package ownly

import (
	"strings"
	"unsafe"
)

// Cow is a copy-on-write text value. The borrowed form is a zero-copy view
// over storage the caller controls: Borrowed aliases the supplied byte
// buffer, so mutating or recycling that buffer changes or invalidates the
// view. ToOwned and IntoOwned resolve to the owned form, whose content is
// immutable and valid for the remaining life of the process.
//
// Cow is comparable and can be used as a map key.
type Cow struct {
	value string
	owned bool
}

// Borrowed returns a text view aliasing buf without copying. The caller must
// keep buf live and unchanged for as long as the view is in use.
func Borrowed(buf []byte) Cow {
	if len(buf) == 0 {
		return Cow{}
	}
	return Cow{value: unsafe.String(&buf[0], len(buf))}
}

// BorrowedString marks an externally supplied string as borrowed.
func BorrowedString(s string) Cow {
	return Cow{value: s}
}

// Owned returns a self contained text value.
func Owned(s string) Cow {
	return Cow{value: s, owned: true}
}

// ToOwned returns an owned counterpart. Borrowed content is copied; already
// owned content is passed through without reallocation, string data being
// immutable.
func (c Cow) ToOwned() Cow {
	if c.owned {
		return c
	}
	return Cow{value: strings.Clone(c.value), owned: true}
}

// IntoOwned returns an owned counterpart, transferring owned storage instead
// of copying it. Only the borrowed form allocates.
func (c Cow) IntoOwned() Cow {
	if c.owned {
		return c
	}
	return Cow{value: strings.Clone(c.value), owned: true}
}

// String returns the text content.
func (c Cow) String() string {
	return c.value
}

// Len returns the content length in bytes.
func (c Cow) Len() int {
	return len(c.value)
}

// IsOwned returns true if the value is self contained.
func (c Cow) IsOwned() bool {
	return c.owned
}

// IsBorrowed returns true if the value may alias caller storage.
func (c Cow) IsBorrowed() bool {
	return !c.owned
}

// Equal compares content, ignoring ownership.
func (c Cow) Equal(o Cow) bool {
	return c.value == o.value
}
