package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestPersonalWordList_AddWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personal_word_list.txt")
	list, err := New(context.Background(), Params{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	pwl := NewPersonalWordList(path, list)

	for _, w := range []string{"TV", "tv", "dvd"} {
		if err := pwl.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q) error = %v", w, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "tv\ntv\ndvd\n"; got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
	if !list.IsValidWord("dvd") {
		t.Error("IsValidWord(dvd) = false after AddWord")
	}

	if err := pwl.AddWord("  "); err == nil {
		t.Error("AddWord(blank) error = nil")
	}
}

func TestPersonalWordList_InMemory(t *testing.T) {
	list, err := New(context.Background(), Params{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	pwl := NewPersonalWordList("", list)
	if err := pwl.AddWord("tv"); err != nil {
		t.Fatalf("AddWord() error = %v", err)
	}
	if !list.IsValidWord("tv") {
		t.Error("IsValidWord(tv) = false after AddWord")
	}
}
