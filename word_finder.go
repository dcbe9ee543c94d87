package wordbrain

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/BcomedianC/WordBrain-Solver/pkg/primitives"
)

var tracer = otel.Tracer("github.com/BcomedianC/WordBrain-Solver")

// Dictionary judges whether a string is a real word.
type Dictionary interface {
	IsValidWord(word string) bool
}

// DictionaryFunc adapts a plain function to a Dictionary.
type DictionaryFunc func(word string) bool

func (f DictionaryFunc) IsValidWord(word string) bool {
	return f(word)
}

// Candidate is a word together with every path by which it can currently be traced.
type Candidate struct {
	Word  string
	Paths []primitives.Path
}

// Candidates holds the words found for one search step, in discovery order.
type Candidates struct {
	list  []Candidate
	index map[string]int
}

// Add appends path to word's entry, creating the entry on first sight.
func (c *Candidates) Add(word string, path primitives.Path) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	i, ok := c.index[word]
	if !ok {
		i = len(c.list)
		c.index[word] = i
		c.list = append(c.list, Candidate{Word: word})
	}
	c.list[i].Paths = append(c.list[i].Paths, path)
}

func (c Candidates) Len() int {
	return len(c.list)
}

// All returns the candidates in discovery order. The slice must not be modified.
func (c Candidates) All() []Candidate {
	return c.list
}

func (c Candidates) Words() []string {
	words := make([]string, len(c.list))
	for i, cand := range c.list {
		words[i] = cand.Word
	}
	return words
}

func (c Candidates) Lookup(word string) (Candidate, bool) {
	i, ok := c.index[word]
	if !ok {
		return Candidate{}, false
	}
	return c.list[i], true
}

// FindWords returns every dictionary word of exactly length letters that can be traced through
// g, with all of its paths.
//
// Start cells are visited in row-major order and neighbours in primitives.Offsets order, so
// the result is the same every time for a given grid. The dictionary is only asked about
// full-length strings.
func FindWords(ctx context.Context, g Grid, length int, dict Dictionary) (Candidates, error) {
	ctx, span := tracer.Start(ctx, "wordbrain.FindWords", trace.WithAttributes(
		attribute.Int("wordbrain.length", length),
		attribute.Int("wordbrain.letters", g.NumLetters()),
	))
	defer span.End()

	var found Candidates
	if length <= 0 || length > g.NumLetters() {
		return found, nil
	}

	w := wordWalker{grid: g, length: length, dict: dict, found: &found}
	for row := range g.Size() {
		for col := range g.Size() {
			if err := ctx.Err(); err != nil {
				span.RecordError(err)
				return Candidates{}, err
			}
			start := primitives.Coord{Row: row, Col: col}
			if g.IsEmpty(start) {
				continue
			}
			w.walk(ctx, primitives.Path{start}, []rune{g.LetterAt(start)})
		}
	}
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return Candidates{}, err
	}

	span.SetAttributes(attribute.Int("wordbrain.words", found.Len()))
	return found, nil
}

type wordWalker struct {
	grid   Grid
	length int
	dict   Dictionary
	found  *Candidates
}

// walk extends path one unvisited neighbour at a time. Each branch owns its own path, which
// doubles as its visited set.
func (w *wordWalker) walk(ctx context.Context, path primitives.Path, word []rune) {
	if len(word) == w.length {
		candidate := string(word)
		if w.dict.IsValidWord(candidate) {
			w.found.Add(candidate, path)
		}
		return
	}
	if ctx.Err() != nil {
		return
	}

	for _, n := range w.grid.Neighbors(path.Last()) {
		if path.Contains(n) {
			continue
		}
		next := make([]rune, len(word), len(word)+1)
		copy(next, word)
		w.walk(ctx, path.Extend(n), append(next, w.grid.LetterAt(n)))
	}
}
