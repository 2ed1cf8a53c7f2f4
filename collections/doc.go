// Package collections provides owned conversions for map, set, ordered,
// linked, double-ended and heap shaped collections. It is the extended part
// of the conversion matrix; consumers with a constrained environment can skip
// the import and keep the reduced matrix of the root package.
package collections
