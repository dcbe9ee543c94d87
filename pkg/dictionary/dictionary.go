// Package dictionary provides the word oracle used by the solver: word lists loaded from
// files or BigQuery, plus the player's personal word list.
package dictionary

import (
	"context"
	"fmt"
	"sync"

	"github.com/BcomedianC/WordBrain-Solver/internal"
)

// Params configures a WordList.
type Params struct {
	Words         []string
	PersonalWords []string
	ExcludedWords []string

	// Zero means no bound.
	MinWordLength int
	MaxWordLength int
}

// WordList is an in-memory dictionary. It is safe for concurrent use.
type WordList struct {
	mu  sync.RWMutex
	lex *internal.Lexicon
}

func New(ctx context.Context, p Params) (*WordList, error) {
	var minWordLength, maxWordLength *int
	if p.MinWordLength > 0 {
		minWordLength = &p.MinWordLength
	}
	if p.MaxWordLength > 0 {
		maxWordLength = &p.MaxWordLength
	}

	lex, err := internal.BuildLexicon(ctx, internal.LexiconParams{
		PreferredWords: p.Words,
		PersonalWords:  p.PersonalWords,
		ExcludedWords:  p.ExcludedWords,
		MinWordLength:  minWordLength,
		MaxWordLength:  maxWordLength,
	})
	if err != nil {
		return nil, fmt.Errorf("internal.BuildLexicon: %w", err)
	}
	return &WordList{lex: lex}, nil
}

// IsValidWord reports whether word is in the list, ignoring case.
func (w *WordList) IsValidWord(word string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lex.Contains(word)
}

// Add makes word valid for later lookups, unless it is excluded or out of bounds.
func (w *WordList) Add(word string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lex.Add(word)
}

func (w *WordList) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lex.Len()
}

// WordsOfLength returns how many words of exactly n letters are known.
func (w *WordList) WordsOfLength(n int) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lex.WordsOfLength(n)
}
