package memo

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Keyer derives deterministic cache keys from an argument list.
//
// Contract:
// - Determinism: equal argument lists in equal order must produce equal
//   keys, regardless of map iteration order.
// - Concurrency: implementations must be safe for concurrent use.
// - Failure: if a key cannot be derived, Key must return an error rather
//   than a divergent key.
type Keyer interface {
	// Key derives a cache key from the full argument list.
	Key(args ...any) (string, error)
}

// DefaultKeyer derives keys by hashing a canonical JSON serialization of
// the argument list.
//
// Known limitation: arguments that cannot be serialized (cyclic
// structures, channels, functions) fail key derivation with an error.
// Memoization is undefined for such inputs; callers needing them must
// supply their own Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key derives a deterministic cache key.
// Format: memo:<hash>
// where hash is the xxhash of the canonical JSON array of the arguments.
func (k *DefaultKeyer) Key(args ...any) (string, error) {
	canonical, err := canonicalizeSlice(args)
	if err != nil {
		return "", fmt.Errorf("memo: failed to canonicalize arguments: %w", err)
	}

	return fmt.Sprintf("memo:%x", xxhash.Sum64(canonical)), nil
}

// canonicalize produces a deterministic JSON representation of a value.
// Maps are sorted by key to ensure consistent ordering.
func canonicalize(v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	switch val := v.(type) {
	case map[string]any:
		return canonicalizeMap(val)
	case []any:
		return canonicalizeSlice(val)
	default:
		// encoding/json sorts typed map keys on its own
		return json.Marshal(v)
	}
}

func canonicalizeMap(m map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []byte("{")
	for i, k := range keys {
		if i > 0 {
			result = append(result, ',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		result = append(result, keyBytes...)
		result = append(result, ':')

		valBytes, err := canonicalize(m[k])
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, '}')

	return result, nil
}

func canonicalizeSlice(s []any) ([]byte, error) {
	result := []byte("[")
	for i, v := range s {
		if i > 0 {
			result = append(result, ',')
		}

		valBytes, err := canonicalize(v)
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, ']')

	return result, nil
}

// Ensure DefaultKeyer implements Keyer
var _ Keyer = (*DefaultKeyer)(nil)
