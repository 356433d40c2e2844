package idgen

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	id, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(id, DefaultPrefix) {
		t.Errorf("id %q missing prefix %q", id, DefaultPrefix)
	}
	if len(id) != len(DefaultPrefix)+Length {
		t.Errorf("id %q has length %d, want %d", id, len(id), len(DefaultPrefix)+Length)
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix("xx-")
	if err != nil {
		t.Fatalf("GenerateWithPrefix: %v", err)
	}
	if !strings.HasPrefix(id, "xx-") {
		t.Errorf("id %q missing prefix", id)
	}
}

func TestGenerateCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	for i := 0; i < 50; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		random := strings.TrimPrefix(id, DefaultPrefix)
		if !valid.MatchString(random) {
			t.Fatalf("id %q contains characters outside the alphabet", id)
		}
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}
