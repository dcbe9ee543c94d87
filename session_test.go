package wordbrain

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestSession() *Session {
	dict := setDictionary("abc", "ghi", "abcfed", "defihg")
	return NewSession(NewSolver(dict, []int{3, 6}), MustParseGrid("abc def ghi"))
}

func TestSession_Solutions(t *testing.T) {
	s := newTestSession()

	var got []Solution
	for sol := range s.Solutions(context.Background()) {
		got = append(got, sol)
	}

	want := []Solution{{"abc", "defihg"}, {"ghi", "abcfed"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Solutions() mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(s.Err(), ErrUnsolvable) {
		t.Errorf("Err() = %v, want ErrUnsolvable", s.Err())
	}
	if diff := cmp.Diff(want, s.Rejected()); diff != "" {
		t.Errorf("Rejected() mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_AcceptStopsRejecting(t *testing.T) {
	s := newTestSession()

	var accepted Solution
	for sol := range s.Solutions(context.Background()) {
		accepted = sol
		break
	}

	if diff := cmp.Diff(Solution{"abc", "defihg"}, accepted); diff != "" {
		t.Errorf("accepted mismatch (-want +got):\n%s", diff)
	}
	if n := len(s.Rejected()); n != 0 {
		t.Errorf("Rejected() has %d solutions, want 0", n)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, want nil", s.Err())
	}
}

func TestSession_NextAndReject(t *testing.T) {
	s := newTestSession()
	ctx := context.Background()

	first, err := s.Next(ctx)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	again, err := s.Next(ctx)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if diff := cmp.Diff(first, again); diff != "" {
		t.Errorf("Next() without rejecting changed its answer (-first +again):\n%s", diff)
	}

	s.Reject(first)
	second, err := s.Next(ctx)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if diff := cmp.Diff(Solution{"ghi", "abcfed"}, second); diff != "" {
		t.Errorf("Next() after Reject mismatch (-want +got):\n%s", diff)
	}
	if s.Stats.Frames == 0 {
		t.Error("Stats not recorded")
	}
}

func TestSession_GridIsACopy(t *testing.T) {
	g := MustParseGrid("abc def ghi")
	s := NewSession(NewSolver(setDictionary(), []int{9}), g)

	g.Remove(FindPaths("abc", g)[0])
	if got := s.Grid().String(); got != "abc\ndef\nghi" {
		t.Errorf("Grid() = %q, want the grid as it was when the session started", got)
	}
}

func TestSession_Canceled(t *testing.T) {
	s := newTestSession()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for range s.Solutions(ctx) {
		t.Fatal("Solutions() yielded after cancel")
	}
	if !errors.Is(s.Err(), context.Canceled) {
		t.Errorf("Err() = %v, want context.Canceled", s.Err())
	}
}

func TestSession_EmptyPuzzle(t *testing.T) {
	s := NewSession(NewSolver(setDictionary(), nil), MustParseGrid("----"))

	var got []Solution
	for sol := range s.Solutions(context.Background()) {
		got = append(got, sol)
	}

	if diff := cmp.Diff([]Solution{{}}, got); diff != "" {
		t.Errorf("Solutions() mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(s.Err(), ErrUnsolvable) {
		t.Errorf("Err() = %v, want ErrUnsolvable", s.Err())
	}
}
