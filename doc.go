// Package ownly converts values that may alias caller owned storage into
// self contained equivalents. It defines the non-consuming ToOwned and the
// consuming IntoOwned capabilities, copy-on-write text and byte buffer types
// whose borrowed form is a zero-copy view over a caller buffer, and
// conversions for optional, boxed and sequence shapes. Map, set, ordered,
// linked, double-ended and heap shaped collections live in the collections
// subpackage; reflective conversion of aggregate struct types lives in the
// derive subpackage. Importing only this package yields the reduced matrix.
package ownly
