package wordbrain

import (
	"strings"

	"github.com/BcomedianC/WordBrain-Solver/pkg/primitives"
)

// FindPaths returns every trace of word through g, or nil if there is none.
//
// Paths are grown one letter at a time. For each live path the first neighbour holding the next
// letter extends it; every further matching neighbour starts a new path copied from the
// prefix as it was before the extension. New paths are kept after the surviving ones, so the
// result order is deterministic for a given grid.
func FindPaths(word string, g Grid) []primitives.Path {
	letters := []rune(strings.ToLower(word))
	if len(letters) == 0 || len(letters) > g.NumLetters() {
		return nil
	}
	if !g.Letters().Covers(string(letters)) {
		return nil
	}

	var paths []primitives.Path
	for row := range g.Size() {
		for col := range g.Size() {
			c := primitives.Coord{Row: row, Col: col}
			if g.LetterAt(c) == letters[0] {
				paths = append(paths, primitives.Path{c})
			}
		}
	}

	for _, letter := range letters[1:] {
		if len(paths) == 0 {
			return nil
		}

		next := make([]primitives.Path, 0, len(paths))
		var branches []primitives.Path
		for _, prefix := range paths {
			extended := false
			for _, n := range g.Neighbors(prefix.Last()) {
				if g.LetterAt(n) != letter || prefix.Contains(n) {
					continue
				}
				if !extended {
					next = append(next, prefix.Extend(n))
					extended = true
				} else {
					branches = append(branches, prefix.Extend(n))
				}
			}
		}
		paths = append(next, branches...)
	}

	if len(paths) == 0 {
		return nil
	}
	return paths
}
