package memo

import "sync"

// Wrap memoizes a pure single-argument function over a sync.Map.
// It is the zero-ceremony fast path for comparable arguments; use a
// Memoizer when the argument list is heterogeneous or a Keyer is needed.
// Concurrent calls with the same argument may both invoke fn.
func Wrap[A comparable, V any](fn func(A) V) func(A) V {
	var cache sync.Map
	return func(a A) V {
		if v, ok := cache.Load(a); ok {
			// Comma-ok: a nil result of an interface-typed V loads as a
			// nil any, and a plain assertion would panic.
			val, _ := v.(V)
			return val
		}
		v := fn(a)
		cache.Store(a, v)
		return v
	}
}

// Wrap2 memoizes a pure two-argument function. See Wrap.
func Wrap2[A, B comparable, V any](fn func(A, B) V) func(A, B) V {
	type key struct {
		a A
		b B
	}
	var cache sync.Map
	return func(a A, b B) V {
		k := key{a, b}
		if v, ok := cache.Load(k); ok {
			val, _ := v.(V)
			return val
		}
		v := fn(a, b)
		cache.Store(k, v)
		return v
	}
}
