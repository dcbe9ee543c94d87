package internal

import (
	"context"
	"strings"
	"unicode/utf8"
)

type LexiconParams struct {
	PreferredWords []string
	PersonalWords  []string
	ExcludedWords  []string
	MinWordLength  *int
	MaxWordLength  *int
}

type params struct {
	preferredWords []string
	personalWords  []string
	excludedWords  []string
	minWordLength  int
	maxWordLength  int
}

func asParams(p LexiconParams) params {
	pp := params{
		preferredWords: p.PreferredWords,
		personalWords:  p.PersonalWords,
		excludedWords:  p.ExcludedWords,
	}

	if p.MinWordLength == nil {
		pp.minWordLength = 1
	} else {
		pp.minWordLength = *p.MinWordLength
	}

	// No upper bound unless asked for.
	if p.MaxWordLength != nil {
		pp.maxWordLength = *p.MaxWordLength
	}

	return pp
}

// Lexicon is a set of words bucketed by length (in runes).
type Lexicon struct {
	minWordLength int
	maxWordLength int

	byLength map[int]map[string]bool
	excluded map[string]bool
}

func (l *Lexicon) fits(word string) bool {
	n := utf8.RuneCountInString(word)
	if n < l.minWordLength {
		return false
	}
	return l.maxWordLength == 0 || n <= l.maxWordLength
}

// Add inserts a word unless it is excluded or out of the length bounds. It reports whether
// the word is now in the lexicon.
func (l *Lexicon) Add(word string) bool {
	word = normalize(word)
	if word == "" || l.excluded[word] || !l.fits(word) {
		return false
	}
	n := utf8.RuneCountInString(word)
	if l.byLength[n] == nil {
		l.byLength[n] = make(map[string]bool)
	}
	l.byLength[n][word] = true
	return true
}

func (l *Lexicon) Contains(word string) bool {
	word = normalize(word)
	return l.byLength[utf8.RuneCountInString(word)][word]
}

// WordsOfLength returns how many words of exactly n letters the lexicon holds.
func (l *Lexicon) WordsOfLength(n int) int {
	return len(l.byLength[n])
}

func (l *Lexicon) Len() int {
	total := 0
	for _, words := range l.byLength {
		total += len(words)
	}
	return total
}

// BuildLexicon returns a lexicon of the preferred and personal words, minus the excluded
// ones.
func BuildLexicon(ctx context.Context, p LexiconParams) (*Lexicon, error) {
	params := asParams(p)
	lex := &Lexicon{
		minWordLength: params.minWordLength,
		maxWordLength: params.maxWordLength,
		byLength:      make(map[int]map[string]bool),
		excluded:      make(map[string]bool),
	}

	for _, word := range params.excludedWords {
		lex.excluded[normalize(word)] = true
	}

	for _, words := range [][]string{params.preferredWords, params.personalWords} {
		for _, word := range words {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lex.Add(word)
		}
	}

	return lex, ctx.Err()
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
