package memo

import "testing"

// TestWrap verifies the closure fast path invokes the function once per
// distinct argument.
func TestWrap(t *testing.T) {
	var calls int
	double := Wrap(func(n int) int {
		calls++
		return n * 2
	})

	if got := double(2); got != 4 {
		t.Fatalf("double(2) = %d, want 4", got)
	}
	if got := double(2); got != 4 {
		t.Fatalf("double(2) second call = %d, want 4", got)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	_ = double(3)
	if calls != 2 {
		t.Errorf("calls = %d, want 2 after distinct argument", calls)
	}
}

// TestWrap_NilInterfaceResult verifies a nil result of an interface-typed
// function replays from the cache without panicking.
func TestWrap_NilInterfaceResult(t *testing.T) {
	var calls int
	lookup := Wrap(func(n int) any {
		calls++
		return nil
	})

	for i := 0; i < 2; i++ {
		if got := lookup(1); got != nil {
			t.Fatalf("lookup(1) call %d = %v, want nil", i+1, got)
		}
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	none := Wrap2(func(a, b string) error { return nil })
	for i := 0; i < 2; i++ {
		if got := none("x", "y"); got != nil {
			t.Fatalf("none() call %d = %v, want nil", i+1, got)
		}
	}
}

// TestWrap2 verifies both arguments participate in the identity.
func TestWrap2(t *testing.T) {
	var calls int
	join := Wrap2(func(a, b string) string {
		calls++
		return a + b
	})

	if got := join("x", "y"); got != "xy" {
		t.Fatalf("join = %q, want xy", got)
	}
	_ = join("x", "y")
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Swapped arguments are a different identity
	if got := join("y", "x"); got != "yx" {
		t.Fatalf("join swapped = %q, want yx", got)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
