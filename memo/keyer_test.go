package memo

import (
	"strings"
	"testing"
)

// TestDefaultKeyer_Deterministic verifies equal argument lists derive
// equal keys regardless of map iteration order.
func TestDefaultKeyer_Deterministic(t *testing.T) {
	keyer := NewDefaultKeyer()

	tests := []struct {
		name  string
		a     []any
		b     []any
		equal bool
	}{
		{
			"identical scalars",
			[]any{1, "two", true},
			[]any{1, "two", true},
			true,
		},
		{
			"map ordering irrelevant",
			[]any{map[string]any{"b": 2, "a": 1}},
			[]any{map[string]any{"a": 1, "b": 2}},
			true,
		},
		{
			"argument order matters",
			[]any{1, 2},
			[]any{2, 1},
			false,
		},
		{
			"different values differ",
			[]any{"x"},
			[]any{"y"},
			false,
		},
		{
			"nil argument",
			[]any{nil},
			[]any{nil},
			true,
		},
		{
			"nested structures",
			[]any{[]any{map[string]any{"k": []any{1, 2}}}},
			[]any{[]any{map[string]any{"k": []any{1, 2}}}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, err := keyer.Key(tt.a...)
			if err != nil {
				t.Fatalf("Key(a) = %v", err)
			}
			kb, err := keyer.Key(tt.b...)
			if err != nil {
				t.Fatalf("Key(b) = %v", err)
			}
			if (ka == kb) != tt.equal {
				t.Errorf("Key(a)=%q Key(b)=%q, want equal=%v", ka, kb, tt.equal)
			}
		})
	}
}

// TestDefaultKeyer_Format verifies the key prefix.
func TestDefaultKeyer_Format(t *testing.T) {
	keyer := NewDefaultKeyer()
	key, err := keyer.Key("anything")
	if err != nil {
		t.Fatalf("Key() = %v", err)
	}
	if !strings.HasPrefix(key, "memo:") {
		t.Errorf("Key() = %q, want memo: prefix", key)
	}
}

// TestDefaultKeyer_UnserializableFailsDeterministically verifies channels
// and functions fail derivation with an error, never a divergent key.
func TestDefaultKeyer_UnserializableFailsDeterministically(t *testing.T) {
	keyer := NewDefaultKeyer()

	tests := []struct {
		name string
		arg  any
	}{
		{"channel", make(chan int)},
		{"function", func() {}},
		{"nested channel", map[string]any{"ch": make(chan int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := keyer.Key(tt.arg); err == nil {
				t.Errorf("Key(%s) = nil error, want serialization failure", tt.name)
			}
		})
	}
}

// TestDefaultKeyer_NoArgs verifies an empty argument list still derives a
// stable key.
func TestDefaultKeyer_NoArgs(t *testing.T) {
	keyer := NewDefaultKeyer()
	k1, err := keyer.Key()
	if err != nil {
		t.Fatalf("Key() = %v", err)
	}
	k2, _ := keyer.Key()
	if k1 != k2 {
		t.Errorf("Key() not stable for empty args: %q vs %q", k1, k2)
	}
}
