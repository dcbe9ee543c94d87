package wordbrain

import (
	"context"
	"iter"
)

// Session repeats full solves of one puzzle, excluding every solution the player rejected.
//
// Each attempt starts over from the original grid; nothing from a previous search is reused,
// since a rejection can invalidate a choice made at any depth.
type Session struct {
	solver   *Solver
	grid     Grid
	rejected RejectionSet

	// Stats of the most recent attempt.
	Stats Stats

	err error
}

func NewSession(solver *Solver, g Grid) *Session {
	return &Session{
		solver: solver,
		grid:   g.Clone(),
	}
}

// Grid returns a copy of the puzzle the session solves.
func (s *Session) Grid() Grid {
	return s.grid.Clone()
}

// Next runs a fresh search. It returns ErrUnsolvable once nothing but rejected solutions remain.
func (s *Session) Next(ctx context.Context) (Solution, error) {
	sol, stats, err := s.solver.Solve(ctx, s.grid, &s.rejected)
	s.Stats = stats
	return sol, err
}

// Reject excludes sol from every later attempt.
func (s *Session) Reject(sol Solution) {
	s.rejected.Add(sol)
}

// Rejected returns the solutions rejected so far, oldest first.
func (s *Session) Rejected() []Solution {
	return s.rejected.All()
}

// Solutions yields one solution per attempt. Asking for the next value rejects the previous
// one; breaking out of the loop accepts it. The sequence ends when the puzzle cannot be solved
// any more or ctx is done; Err reports why.
func (s *Session) Solutions(ctx context.Context) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		for {
			sol, err := s.Next(ctx)
			s.err = err
			if err != nil {
				return
			}
			if !yield(sol) {
				return
			}
			s.Reject(sol)
		}
	}
}

// Err returns the error that ended the last Solutions sequence, usually ErrUnsolvable.
func (s *Session) Err() error {
	return s.err
}
