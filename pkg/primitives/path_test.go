package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoord_Adjacent(t *testing.T) {
	origin := Coord{Row: 1, Col: 1}
	for _, off := range Offsets {
		n := Coord{Row: origin.Row + off.Row, Col: origin.Col + off.Col}
		if !origin.Adjacent(n) {
			t.Errorf("%v should be adjacent to %v", n, origin)
		}
	}

	for _, c := range []Coord{{1, 1}, {3, 1}, {1, 3}, {-1, -1}} {
		if origin.Adjacent(c) {
			t.Errorf("%v should not be adjacent to %v", c, origin)
		}
	}
}

func TestOffsets_ScanOrder(t *testing.T) {
	var got []Coord
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			got = append(got, Coord{Row: dr, Col: dc})
		}
	}
	if diff := cmp.Diff(got, Offsets[:]); diff != "" {
		t.Errorf("Offsets mismatch (-nested loop +Offsets):\n%s", diff)
	}
}

func TestPath_Extend(t *testing.T) {
	prefix := Path{{0, 0}, {0, 1}}
	a := prefix.Extend(Coord{1, 1})
	b := prefix.Extend(Coord{1, 2})

	if diff := cmp.Diff(Path{{0, 0}, {0, 1}}, prefix); diff != "" {
		t.Errorf("prefix modified (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Path{{0, 0}, {0, 1}, {1, 1}}, a); diff != "" {
		t.Errorf("first branch mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Path{{0, 0}, {0, 1}, {1, 2}}, b); diff != "" {
		t.Errorf("second branch mismatch (-want +got):\n%s", diff)
	}
}

func TestPath_Valid(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want bool
	}{
		{"empty", Path{}, true},
		{"single", Path{{2, 2}}, true},
		{"diagonal", Path{{0, 0}, {1, 1}, {2, 2}}, true},
		{"revisit", Path{{0, 0}, {0, 1}, {0, 0}}, false},
		{"gap", Path{{0, 0}, {0, 2}}, false},
		{"stay", Path{{0, 0}, {0, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPath_String(t *testing.T) {
	p := Path{{0, 0}, {1, 0}}
	if got, want := p.String(), "(0,0)->(1,0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
