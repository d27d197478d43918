package kindof

import "testing"

// TestOf verifies each input reports exactly its own kind.
func TestOf(t *testing.T) {
	type payload struct{ N int }
	var nilMap map[string]int
	var nilPtr *payload

	tests := []struct {
		name string
		v    any
		want Kind
	}{
		{"untyped nil", nil, Nil},
		{"typed nil pointer", nilPtr, Nil},
		{"typed nil map", nilMap, Nil},
		{"bool", true, Bool},
		{"int", 42, Int},
		{"int64", int64(-1), Int},
		{"uint", uint(3), Uint},
		{"byte", byte(0xff), Uint},
		{"float", 3.14, Float},
		{"complex", complex(1, 2), Complex},
		{"string", "hello", String},
		{"empty slice", []int{}, Slice},
		{"array", [2]int{1, 2}, Array},
		{"map", map[string]int{}, Map},
		{"struct", payload{}, Struct},
		{"struct pointer", &payload{}, Pointer},
		{"func", func() {}, Func},
		{"chan", make(chan int), Chan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.v); got != tt.want {
				t.Errorf("Of(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

// TestPredicates_Exclusive verifies each predicate is true for exactly its
// matching kind and false for every other probe value.
func TestPredicates_Exclusive(t *testing.T) {
	probes := map[string]any{
		"nil":    nil,
		"bool":   true,
		"int":    1,
		"float":  1.5,
		"string": "s",
		"slice":  []int{1},
		"map":    map[string]int{"a": 1},
		"struct": struct{}{},
		"func":   func() {},
		"chan":   make(chan int),
		"ptr":    new(int),
	}

	preds := []struct {
		name    string
		fn      func(any) bool
		matches map[string]bool
	}{
		{"IsNil", IsNil, map[string]bool{"nil": true}},
		{"IsBool", IsBool, map[string]bool{"bool": true}},
		{"IsNumber", IsNumber, map[string]bool{"int": true, "float": true}},
		{"IsString", IsString, map[string]bool{"string": true}},
		{"IsSlice", IsSlice, map[string]bool{"slice": true}},
		{"IsMap", IsMap, map[string]bool{"map": true}},
		{"IsStruct", IsStruct, map[string]bool{"struct": true}},
		{"IsFunc", IsFunc, map[string]bool{"func": true}},
		{"IsChan", IsChan, map[string]bool{"chan": true}},
		{"IsPointer", IsPointer, map[string]bool{"ptr": true}},
	}

	for _, p := range preds {
		t.Run(p.name, func(t *testing.T) {
			for label, v := range probes {
				want := p.matches[label]
				if got := p.fn(v); got != want {
					t.Errorf("%s(%s) = %v, want %v", p.name, label, got, want)
				}
			}
		})
	}
}

// TestKind_String verifies the enum has readable names.
func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Nil, "nil"},
		{Bool, "bool"},
		{String, "string"},
		{Map, "map"},
		{Invalid, "invalid"},
		{Kind(99), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
