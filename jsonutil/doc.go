// Package jsonutil provides JSON helpers that swallow failures at the
// boundary: errors are logged and converted to a sentinel return value
// instead of propagated.
//
// A sentinel result is indistinguishable from input that legitimately
// held that value; callers needing to tell them apart must use
// encoding/json directly.
package jsonutil
