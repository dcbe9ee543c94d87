package wordbrain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnsolvable means every word and path was tried without reaching an empty grid with a
// sequence that has not been rejected.
var ErrUnsolvable = errors.New("could not solve")

// Stats captures how much work a solve took.
type Stats struct {
	Frames       int
	WordSearches int
	Backtracks   int
	Duration     time.Duration
}

// Solver drives word searches across the required lengths, backtracking on dead ends.
type Solver struct {
	Dictionary Dictionary
	Lengths    []int

	log logrus.FieldLogger
}

type Option func(*Solver)

// WithLogger sets the logger used for search diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Solver) {
		s.log = l
	}
}

func NewSolver(dict Dictionary, lengths []int, opts ...Option) *Solver {
	s := &Solver{
		Dictionary: dict,
		Lengths:    lengths,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// solveState is the bookkeeping of a single Solve call.
type solveState struct {
	solver   *Solver
	rejected *RejectionSet
	stats    Stats
	log      logrus.FieldLogger
}

// Solve finds one word per required length such that removing them in order empties g, and
// such that the whole sequence is not in rejected. g is never modified.
//
// Words are tried in discovery order and, for each word, paths in discovery order. A dead end
// moves on to the next path, then the next word, then back to the previous length. Only
// the complete sequence is checked against rejected, at the first length.
func (s *Solver) Solve(ctx context.Context, g Grid, rejected *RejectionSet) (Solution, Stats, error) {
	ctx, span := tracer.Start(ctx, "wordbrain.Solve", trace.WithAttributes(
		attribute.Int("wordbrain.steps", len(s.Lengths)),
		attribute.Int("wordbrain.rejected", rejected.Len()),
	))
	defer span.End()

	start := time.Now()
	st := &solveState{
		solver:   s,
		rejected: rejected,
		log:      s.log.WithField("grid", g.DebugString()),
	}

	sol, ok, err := st.solveFrom(ctx, g, 0)
	st.stats.Duration = time.Since(start)
	span.SetAttributes(
		attribute.Int("wordbrain.frames", st.stats.Frames),
		attribute.Int("wordbrain.backtracks", st.stats.Backtracks),
	)

	if err != nil {
		span.RecordError(err)
		return nil, st.stats, err
	}
	// With no lengths the empty solution never reaches the per-path check in solveFrom.
	if !ok || rejected.Conflicts(sol) {
		return nil, st.stats, ErrUnsolvable
	}
	st.log.WithFields(logrus.Fields{
		"solution": sol.String(),
		"frames":   st.stats.Frames,
		"duration": st.stats.Duration,
	}).Debug("solved")
	return sol, st.stats, nil
}

// solveFrom returns the words for positions pos and after, or false if no continuation exists
// from g.
func (st *solveState) solveFrom(ctx context.Context, g Grid, pos int) (Solution, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	st.stats.Frames++

	lengths := st.solver.Lengths
	if pos == len(lengths) {
		return Solution{}, true, nil
	}

	candidates, err := FindWords(ctx, g, lengths[pos], st.solver.Dictionary)
	if err != nil {
		return nil, false, fmt.Errorf("FindWords(length=%d): %w", lengths[pos], err)
	}
	st.stats.WordSearches++

	log := st.log.WithFields(logrus.Fields{"position": pos, "length": lengths[pos]})
	if candidates.Len() == 0 {
		log.Debug("no words, backtracking")
		return nil, false, nil
	}
	log.WithField("words", candidates.Words()).Debug("searching")

	for _, cand := range candidates.All() {
		for _, path := range cand.Paths {
			rest, ok, err := st.solveFrom(ctx, g.Without(path), pos+1)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				st.stats.Backtracks++
				continue
			}

			sol := append(Solution{cand.Word}, rest...)
			if pos == 0 && st.rejected.Conflicts(sol) {
				log.WithField("solution", sol.String()).Debug("previously rejected, trying next path")
				st.stats.Backtracks++
				continue
			}
			return sol, true, nil
		}
	}
	return nil, false, nil
}
