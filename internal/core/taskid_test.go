package core

import (
	"strings"
	"testing"
)

func TestGenerateID_Length(t *testing.T) {
	gen := NewIDGenerator()
	id := gen.GenerateID()
	if len(id) != idLength {
		t.Fatalf("expected %d characters, got %d (%q)", idLength, len(id), id)
	}
}

func TestGenerateID_Alphabet(t *testing.T) {
	gen := NewIDGenerator()
	for i := 0; i < 100; i++ {
		id := gen.GenerateID()
		for _, c := range id {
			if !strings.ContainsRune(idAlphabet, c) {
				t.Fatalf("id %q contains character %q outside the alphanumeric alphabet", id, c)
			}
		}
	}
}

func TestGenerateID_Distinct(t *testing.T) {
	// No uniqueness check exists by design; with a 62^8 keyspace a repeat
	// within a few hundred draws indicates a broken generator.
	gen := NewIDGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := gen.GenerateID()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}
