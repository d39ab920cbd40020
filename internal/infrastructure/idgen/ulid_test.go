package idgen

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestULIDGenerator_Generate(t *testing.T) {
	gen := NewULIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	if _, err := ulid.Parse(first); err != nil {
		t.Fatalf("expected valid ULID, got %q: %v", first, err)
	}
	if first == second {
		t.Fatalf("expected unique ids, got %q twice", first)
	}
	if first > second {
		t.Fatalf("expected monotonic ids, got %q after %q", second, first)
	}
}
