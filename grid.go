package wordbrain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/BcomedianC/WordBrain-Solver/pkg/primitives"
)

// Empty marks a cell holding no letter, either blank from the start or cleared by a solved word.
const Empty = '-'

// PathMarker replaces the letters of a path when a trace is shown to the player.
const PathMarker = '!'

var ErrMalformedGrid = errors.New("grid is not properly shaped")

// Grid is a square 2D grid of runes.
//
// Mutating methods use a pointer receiver; everything else works on a value. Clone and
// Without return copies that share nothing with the receiver.
type Grid struct {
	cells [][]rune
}

// ParseGrid builds a grid from text. Whitespace is ignored so the letters can be laid out in
// any shape, as long as their count is a perfect square.
func ParseGrid(text string) (Grid, error) {
	var letters []rune
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		letters = append(letters, unicode.ToLower(r))
	}

	size := 0
	for size*size < len(letters) {
		size++
	}
	if size == 0 || size*size != len(letters) {
		return Grid{}, fmt.Errorf("%w: %d letters is not a perfect square", ErrMalformedGrid, len(letters))
	}

	cells := make([][]rune, size)
	for row := range size {
		cells[row] = letters[row*size : (row+1)*size : (row+1)*size]
	}
	return Grid{cells: cells}, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input.
func MustParseGrid(text string) Grid {
	g, err := ParseGrid(text)
	if err != nil {
		panic(err)
	}
	return g
}

func (g Grid) Size() int {
	return len(g.cells)
}

// NumLetters returns the number of non-empty cells.
func (g Grid) NumLetters() int {
	n := 0
	for _, row := range g.cells {
		for _, r := range row {
			if r != Empty {
				n++
			}
		}
	}
	return n
}

func (g Grid) InBounds(c primitives.Coord) bool {
	return c.Row >= 0 && c.Row < g.Size() && c.Col >= 0 && c.Col < g.Size()
}

// LetterAt returns the letter at c, or Empty for empty and out of bounds cells.
func (g Grid) LetterAt(c primitives.Coord) rune {
	if !g.InBounds(c) {
		return Empty
	}
	return g.cells[c.Row][c.Col]
}

func (g Grid) IsEmpty(c primitives.Coord) bool {
	return g.LetterAt(c) == Empty
}

// Neighbors returns the in-bounds, non-empty cells touching c, in primitives.Offsets order.
func (g Grid) Neighbors(c primitives.Coord) []primitives.Coord {
	adj := make([]primitives.Coord, 0, len(primitives.Offsets))
	for _, off := range primitives.Offsets {
		n := primitives.Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if g.IsEmpty(n) {
			continue
		}
		adj = append(adj, n)
	}
	return adj
}

// Remove clears every cell of path. It does not shift the grid.
func (g *Grid) Remove(path primitives.Path) {
	for _, c := range path {
		if g.InBounds(c) {
			g.cells[c.Row][c.Col] = Empty
		}
	}
}

// GravityShift lets the letters of every column fall to the bottom, keeping their vertical
// order and padding the top with empty cells.
//
//	a -    =>   - -
//	- b    =>   a b
func (g *Grid) GravityShift() {
	size := g.Size()
	col := make([]rune, 0, size)
	for c := range size {
		col = col[:0]
		for r := range size {
			if g.cells[r][c] != Empty {
				col = append(col, g.cells[r][c])
			}
		}
		pad := size - len(col)
		for r := range size {
			if r < pad {
				g.cells[r][c] = Empty
			} else {
				g.cells[r][c] = col[r-pad]
			}
		}
	}
}

func (g Grid) Clone() Grid {
	cells := make([][]rune, len(g.cells))
	for i, row := range g.cells {
		cells[i] = make([]rune, len(row))
		copy(cells[i], row)
	}
	return Grid{cells: cells}
}

// Without returns a copy of the grid with path removed and gravity applied.
func (g Grid) Without(path primitives.Path) Grid {
	next := g.Clone()
	next.Remove(path)
	next.GravityShift()
	return next
}

// Marked returns a copy of the grid with the cells of path replaced by mark.
func (g Grid) Marked(path primitives.Path, mark rune) Grid {
	next := g.Clone()
	for _, c := range path {
		if next.InBounds(c) {
			next.cells[c.Row][c.Col] = mark
		}
	}
	return next
}

// Spell reads the letters along path.
func (g Grid) Spell(path primitives.Path) string {
	var sb strings.Builder
	for _, c := range path {
		sb.WriteRune(g.LetterAt(c))
	}
	return sb.String()
}

// Letters returns the multiset of letters currently in the grid.
func (g Grid) Letters() *primitives.LetterBag {
	bag := primitives.NewLetterBag()
	for _, row := range g.cells {
		for _, r := range row {
			if r != Empty {
				bag.Add(r)
			}
		}
	}
	return bag
}

func (g Grid) Equal(o Grid) bool {
	if g.Size() != o.Size() {
		return false
	}
	for i := range g.cells {
		if string(g.cells[i]) != string(o.cells[i]) {
			return false
		}
	}
	return true
}

// Repr prints one row per line with letters separated by spaces.
func (g Grid) Repr() string {
	lines := make([]string, g.Size())
	for i, row := range g.cells {
		letters := make([]string, len(row))
		for j, r := range row {
			letters[j] = string(r)
		}
		lines[i] = strings.Join(letters, " ")
	}
	return strings.Join(lines, "\n")
}

// String returns the compact form accepted by ParseGrid, one row per line.
func (g Grid) String() string {
	lines := make([]string, g.Size())
	for i, row := range g.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{size: %d, letters: %d, grid: %q}", g.Size(), g.NumLetters(), g.String())
}
