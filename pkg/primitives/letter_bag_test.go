package primitives

import (
	"testing"
)

func TestLetterBag_Add(t *testing.T) {
	b := NewLetterBag()

	tests := []struct {
		name      string
		char      rune
		wantCount int
		wantLen   int
	}{
		{"add 'a'", 'a', 1, 1},
		{"add 'b'", 'b', 1, 2},
		{"add 'a' again", 'a', 2, 3},
		{"add non-ascii", 'é', 1, 4},
		{"add non-ascii again", 'é', 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.Add(tt.char)
			if got := b.Count(tt.char); got != tt.wantCount {
				t.Errorf("Count(%q) = %d, want %d", tt.char, got, tt.wantCount)
			}
			if b.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", b.Len(), tt.wantLen)
			}
		})
	}
}

func TestLetterBag_Remove(t *testing.T) {
	b := LetterBagOf("aab")

	if err := b.Remove('a'); err != nil {
		t.Fatalf("Remove('a') error = %v", err)
	}
	if b.Count('a') != 1 {
		t.Errorf("Count('a') = %d, want 1", b.Count('a'))
	}
	if err := b.Remove('z'); err == nil {
		t.Error("Remove('z') error = nil, want error for missing letter")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestLetterBag_AddAll(t *testing.T) {
	tests := []struct {
		name  string
		first string
		other string
		want  int
	}{
		{"add to empty bag", "", "ab", 2},
		{"add overlapping bags", "a", "ab", 3},
		{"add non-ascii", "ä", "äb", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := LetterBagOf(tt.first)
			b.AddAll(LetterBagOf(tt.other))
			if b.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", b.Len(), tt.want)
			}
		})
	}
}

func TestLetterBag_Covers(t *testing.T) {
	b := LetterBagOf("catsä")

	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"act", true},
		{"cats", true},
		{"catt", false},
		{"dog", false},
		{"sä", true},
		{"ää", false},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := b.Covers(tt.word); got != tt.want {
				t.Errorf("Covers(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestLetterBag_Contains(t *testing.T) {
	b := LetterBagOf("ac")

	tests := []struct {
		name string
		char rune
		want bool
	}{
		{"contains 'a'", 'a', true},
		{"contains 'b'", 'b', false},
		{"contains 'c'", 'c', true},
		{"contains '-'", '-', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.char); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLetterBag_CoversLeavesBagIntact(t *testing.T) {
	b := LetterBagOf("catä")

	if !b.Covers("tä") {
		t.Fatal("Covers(tä) = false, want true")
	}
	if b.Len() != 4 || b.Count('t') != 1 || b.Count('ä') != 1 {
		t.Errorf("bag changed by Covers: Len() = %d, t = %d, ä = %d", b.Len(), b.Count('t'), b.Count('ä'))
	}

	c := b.Clone()
	if err := c.Remove('c'); err != nil {
		t.Fatalf("Remove('c') error = %v", err)
	}
	if !b.Contains('c') {
		t.Error("removing from a clone changed the original")
	}
}
