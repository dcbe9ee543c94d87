package primitives

import (
	"fmt"
	"slices"
	"strings"
)

// Coord identifies a cell of a grid by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether o touches c horizontally, vertically or diagonally.
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Offsets is the fixed neighbour scan order: row delta outer, column delta inner, both
// from -1 to 1, skipping the cell itself.
//
// Discovery order of paths and words follows this order, so changing it changes which
// solution is offered first.
var Offsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Path is an ordered trace through a grid, one cell per letter of a word.
type Path []Coord

// Contains reports whether the path already visits c.
func (p Path) Contains(c Coord) bool {
	return slices.Contains(p, c)
}

// Last returns the most recent cell of the path. The path must not be empty.
func (p Path) Last() Coord {
	return p[len(p)-1]
}

// Extend returns a new path made of p followed by c. p is left untouched, so sibling
// branches can extend the same prefix independently.
func (p Path) Extend(c Coord) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, c)
}

// Valid reports whether all cells are pairwise distinct and consecutive cells are adjacent.
func (p Path) Valid() bool {
	seen := make(map[Coord]bool, len(p))
	for i, c := range p {
		if seen[c] {
			return false
		}
		seen[c] = true
		if i > 0 && !p[i-1].Adjacent(c) {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, "->")
}
