package internal

import (
	"context"
	"testing"
)

func TestBuildLexicon(t *testing.T) {
	three := 3
	five := 5

	tests := []struct {
		name    string
		params  LexiconParams
		want    []string
		notWant []string
		wantLen int
	}{
		{
			name: "preferred and personal words",
			params: LexiconParams{
				PreferredWords: []string{"cat", "Dog", " bird "},
				PersonalWords:  []string{"tv"},
			},
			want:    []string{"cat", "dog", "bird", "tv", "CAT"},
			wantLen: 4,
		},
		{
			name: "excluded words win",
			params: LexiconParams{
				PreferredWords: []string{"cat", "dog"},
				PersonalWords:  []string{"dog"},
				ExcludedWords:  []string{"DOG"},
			},
			want:    []string{"cat"},
			notWant: []string{"dog"},
			wantLen: 1,
		},
		{
			name: "length bounds",
			params: LexiconParams{
				PreferredWords: []string{"a", "at", "cat", "cats", "flies", "kitten"},
				MinWordLength:  &three,
				MaxWordLength:  &five,
			},
			want:    []string{"cat", "cats", "flies"},
			notWant: []string{"a", "at", "kitten"},
			wantLen: 3,
		},
		{
			name: "non-ascii words count runes",
			params: LexiconParams{
				PreferredWords: []string{"bär", "über"},
				MaxWordLength:  &three,
			},
			want:    []string{"bär"},
			notWant: []string{"über"},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := BuildLexicon(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("BuildLexicon() error = %v", err)
			}
			for _, w := range tt.want {
				if !lex.Contains(w) {
					t.Errorf("Contains(%q) = false, want true", w)
				}
			}
			for _, w := range tt.notWant {
				if lex.Contains(w) {
					t.Errorf("Contains(%q) = true, want false", w)
				}
			}
			if lex.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", lex.Len(), tt.wantLen)
			}
		})
	}
}

func TestLexicon_WordsOfLength(t *testing.T) {
	lex, err := BuildLexicon(context.Background(), LexiconParams{
		PreferredWords: []string{"cat", "dog", "bird"},
	})
	if err != nil {
		t.Fatalf("BuildLexicon() error = %v", err)
	}
	if got := lex.WordsOfLength(3); got != 2 {
		t.Errorf("WordsOfLength(3) = %d, want 2", got)
	}
	if got := lex.WordsOfLength(7); got != 0 {
		t.Errorf("WordsOfLength(7) = %d, want 0", got)
	}
}

func TestBuildLexicon_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := BuildLexicon(ctx, LexiconParams{PreferredWords: []string{"cat"}}); err == nil {
		t.Error("BuildLexicon() error = nil, want context error")
	}
}
