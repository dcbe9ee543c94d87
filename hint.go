package wordbrain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/BcomedianC/WordBrain-Solver/pkg/primitives"
)

// OverrideMarker prefixes a word the dictionary does not know but the player insists on,
// e.g. "/tv".
const OverrideMarker = '/'

// ErrNoCandidates means a hint step found no word at all, so the puzzle cannot be finished
// from the current grid.
var ErrNoCandidates = errors.New("no words remaining (a word may not be recognised, e.g. tv)")

// Prompter is the player's side of hint mode.
type Prompter interface {
	// ShowCandidates lists the words found for a step.
	ShowCandidates(step, length int, words []string)
	// AskWord asks the player to name a word.
	AskWord(ctx context.Context, prompt string) (string, error)
	// ConfirmPath shows a grid with a candidate trace marked and asks whether it is the one.
	ConfirmPath(ctx context.Context, marked Grid) (bool, error)
}

// PersonalWords records words the player asserted are valid.
type PersonalWords interface {
	AddWord(word string) error
}

// Hinter walks a puzzle one length at a time, letting the player pick each word.
type Hinter struct {
	Dictionary Dictionary
	Personal   PersonalWords
	Prompter   Prompter
	Lengths    []int

	Log logrus.FieldLogger
}

// Run plays every step on a copy of g and returns the chosen words.
//
// A step with a single word picks it without asking. An answer starting with OverrideMarker is
// accepted if it can be traced through the grid, and is then added to the personal word list.
func (h *Hinter) Run(ctx context.Context, g Grid) (Solution, error) {
	log := h.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	g = g.Clone()
	var chosen Solution
	for step, length := range h.Lengths {
		candidates, err := FindWords(ctx, g, length, h.Dictionary)
		if err != nil {
			return chosen, fmt.Errorf("FindWords(length=%d): %w", length, err)
		}
		h.Prompter.ShowCandidates(step, length, candidates.Words())
		if candidates.Len() == 0 {
			return chosen, fmt.Errorf("step %d (length %d): %w", step+1, length, ErrNoCandidates)
		}

		var cand Candidate
		if candidates.Len() == 1 {
			cand = candidates.All()[0]
		} else {
			cand, err = h.chooseWord(ctx, g, length, &candidates)
			if err != nil {
				return chosen, err
			}
		}

		path, err := h.choosePath(ctx, g, cand)
		if err != nil {
			return chosen, err
		}
		g = g.Without(path)
		log.WithFields(logrus.Fields{
			"step": step + 1,
			"word": cand.Word,
			"path": path.String(),
			"grid": g.DebugString(),
		}).Debug("removed word")
		chosen = append(chosen, cand.Word)
	}
	return chosen, nil
}

// chooseWord asks until the answer is either a listed word or a traceable override.
func (h *Hinter) chooseWord(ctx context.Context, g Grid, length int, candidates *Candidates) (Candidate, error) {
	prompt := "What was the word: "
	for {
		answer, err := h.Prompter.AskWord(ctx, prompt)
		if err != nil {
			return Candidate{}, err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))

		if override, ok := strings.CutPrefix(answer, string(OverrideMarker)); ok {
			cand, ok, err := h.override(g, length, override, candidates)
			if err != nil {
				return Candidate{}, err
			}
			if ok {
				return cand, nil
			}
			prompt = `Your word is not a valid combination. Please enter another "override" word: `
			continue
		}

		if cand, ok := candidates.Lookup(answer); ok {
			return cand, nil
		}
		prompt = "Your word was not in the list: "
	}
}

// override accepts word if it has the step's length and can be traced through g, recording it
// as a personal word.
func (h *Hinter) override(g Grid, length int, word string, candidates *Candidates) (Candidate, bool, error) {
	if utf8.RuneCountInString(word) != length {
		return Candidate{}, false, nil
	}
	if cand, ok := candidates.Lookup(word); ok {
		return cand, true, nil
	}

	paths := FindPaths(word, g)
	if len(paths) == 0 {
		return Candidate{}, false, nil
	}

	if h.Personal != nil {
		if err := h.Personal.AddWord(word); err != nil {
			return Candidate{}, false, fmt.Errorf("AddWord(%q): %w", word, err)
		}
	}
	for _, p := range paths {
		candidates.Add(word, p)
	}
	cand, _ := candidates.Lookup(word)
	return cand, true, nil
}

// choosePath asks about every path but the last, which is used when all others are declined.
func (h *Hinter) choosePath(ctx context.Context, g Grid, cand Candidate) (primitives.Path, error) {
	for _, p := range cand.Paths[:len(cand.Paths)-1] {
		ok, err := h.Prompter.ConfirmPath(ctx, g.Marked(p, PathMarker))
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
	return cand.Paths[len(cand.Paths)-1], nil
}
