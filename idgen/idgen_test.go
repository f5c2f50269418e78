package idgen

import (
	"regexp"
	"strings"
	"testing"
)

func TestNanoID_Length(t *testing.T) {
	for _, length := range []int{8, 12, 16, 24} {
		id := NanoID(length)()
		if len(id) != length {
			t.Fatalf("NanoID(%d): got length %d", length, len(id))
		}
	}
}

func TestNanoID_Alphabet(t *testing.T) {
	id := NanoID(100)()
	for _, c := range id {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')) {
			t.Fatalf("NanoID: unexpected character %q in %q", c, id)
		}
	}
}

func TestNanoID_Uniqueness(t *testing.T) {
	gen := NanoID(12)
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := gen()
		if _, ok := seen[id]; ok {
			t.Fatalf("NanoID: duplicate at iteration %d: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestUUIDv7_Format(t *testing.T) {
	id := UUIDv7()()
	if parts := strings.Split(id, "-"); len(parts) != 5 || len(id) != 36 {
		t.Fatalf("UUIDv7: bad format %q", id)
	}
	// Version nibble.
	if id[14] != '7' {
		t.Fatalf("UUIDv7: version %c in %q", id[14], id)
	}
}

func TestPrefixed_DOMSafe(t *testing.T) {
	id := Prefixed("design-inspector-", NanoID(10))()
	if !regexp.MustCompile(`^design-inspector-[0-9a-z]{10}$`).MatchString(id) {
		t.Fatalf("Prefixed: got %q", id)
	}
}

func TestDefault_IsUUIDv7(t *testing.T) {
	id := New()
	if _, err := Parse(id); err != nil {
		t.Fatalf("New: default should produce a valid UUID: %v", err)
	}
}

func TestParse(t *testing.T) {
	original := UUIDv7()()
	parsed, err := Parse(strings.ToUpper(original))
	if err != nil {
		t.Fatalf("Parse valid UUID: %v", err)
	}
	if parsed != original {
		t.Fatalf("Parse: got %q, want %q", parsed, original)
	}
	if _, err := Parse("not-a-uuid"); err == nil {
		t.Fatal("Parse: expected error for invalid UUID")
	}
}
