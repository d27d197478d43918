// Package sliceop provides copy-on-write slice helpers. Every function
// returns a new slice; the input is never mutated.
//
// Only Move and WithValue can fail, and only on an out-of-range index.
// Splice clamps its arguments instead.
package sliceop
