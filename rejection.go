package wordbrain

import (
	"slices"
	"strings"
)

// Solution is one chosen word per required length, in order.
type Solution []string

func (s Solution) String() string {
	return strings.Join(s, " ")
}

// RejectionSet collects solutions the player declared incorrect.
//
// The zero value is an empty set ready to use.
type RejectionSet struct {
	rejected []Solution
}

// Add records s as rejected. The set keeps its own copy.
func (r *RejectionSet) Add(s Solution) {
	r.rejected = append(r.rejected, slices.Clone(s))
}

func (r *RejectionSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.rejected)
}

// All returns copies of the rejected solutions, oldest first.
func (r *RejectionSet) All() []Solution {
	if r == nil {
		return nil
	}
	out := make([]Solution, len(r.rejected))
	for i, s := range r.rejected {
		out[i] = slices.Clone(s)
	}
	return out
}

// Conflicts reports whether s equals a rejected solution position by position over its whole
// length. Sharing a prefix, or differing in a single word, is not a conflict.
func (r *RejectionSet) Conflicts(s Solution) bool {
	if r == nil {
		return false
	}
	return slices.ContainsFunc(r.rejected, func(rejected Solution) bool {
		return slices.Equal(rejected, s)
	})
}
