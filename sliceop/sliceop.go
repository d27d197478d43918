package sliceop

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned when an index falls outside the slice.
var ErrIndexOutOfRange = errors.New("sliceop: index out of range")

// Move returns a copy of s with the element at oldIndex relocated to
// newIndex. All other elements keep their relative order. Either index
// outside [0, len(s)) is an error.
func Move[S ~[]E, E any](s S, oldIndex, newIndex int) (S, error) {
	if oldIndex < 0 || oldIndex >= len(s) {
		return nil, fmt.Errorf("%w: old index %d, length %d", ErrIndexOutOfRange, oldIndex, len(s))
	}
	if newIndex < 0 || newIndex >= len(s) {
		return nil, fmt.Errorf("%w: new index %d, length %d", ErrIndexOutOfRange, newIndex, len(s))
	}

	out := slices.Clone(s)
	v := out[oldIndex]
	out = slices.Delete(out, oldIndex, oldIndex+1)
	out = slices.Insert(out, newIndex, v)
	return out, nil
}

// Splice returns a copy of s with deleteCount elements removed starting
// at start and items inserted in their place. A negative start counts
// from the end; start and deleteCount clamp to the slice bounds, so
// Splice never fails.
func Splice[S ~[]E, E any](s S, start, deleteCount int, items ...E) S {
	n := len(s)

	if start < 0 {
		start += n
	}
	start = min(max(start, 0), n)
	deleteCount = min(max(deleteCount, 0), n-start)

	out := make(S, 0, n-deleteCount+len(items))
	out = append(out, s[:start]...)
	out = append(out, items...)
	out = append(out, s[start+deleteCount:]...)
	return out
}

// WithValue returns a copy of s with the element at i replaced by v.
// An index outside [0, len(s)) is an error.
func WithValue[S ~[]E, E any](s S, i int, v E) (S, error) {
	if i < 0 || i >= len(s) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s))
	}

	out := slices.Clone(s)
	out[i] = v
	return out, nil
}
