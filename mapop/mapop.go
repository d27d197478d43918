package mapop

// Omit returns a copy of m without the named keys. Keys absent from m are
// ignored.
func Omit[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	out := make(M, len(m))
	for k, v := range m {
		if _, skip := drop[k]; skip {
			continue
		}
		out[k] = v
	}
	return out
}

// Pick returns a copy of m holding only the named keys. Keys absent from
// m are ignored.
func Pick[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}
