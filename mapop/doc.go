// Package mapop provides copy-on-write map helpers. Every function
// returns a new map; the input is never mutated.
package mapop
