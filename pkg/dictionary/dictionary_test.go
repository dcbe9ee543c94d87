package dictionary

import (
	"context"
	"testing"
)

func TestWordList(t *testing.T) {
	list, err := New(context.Background(), Params{
		Words:         []string{"cat", "dog", "Owl", "bear"},
		PersonalWords: []string{"tv"},
		ExcludedWords: []string{"dog"},
		MaxWordLength: 3,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"CAT", true},
		{"owl", true},
		{"tv", true},
		{"dog", false},
		{"bear", false},
		{"act", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := list.IsValidWord(tt.word); got != tt.want {
				t.Errorf("IsValidWord(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}

	if list.Len() != 3 {
		t.Errorf("Len() = %d, want 3", list.Len())
	}
	if got := list.WordsOfLength(3); got != 2 {
		t.Errorf("WordsOfLength(3) = %d, want 2", got)
	}
}

func TestWordList_Add(t *testing.T) {
	list, err := New(context.Background(), Params{ExcludedWords: []string{"dog"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !list.Add("Cat") {
		t.Error("Add(Cat) = false, want true")
	}
	if !list.IsValidWord("cat") {
		t.Error("IsValidWord(cat) = false after Add")
	}
	if list.Add("dog") {
		t.Error("Add(dog) = true, want false for an excluded word")
	}
}
