package attendance

import (
	"errors"
	"testing"
)

func TestParsePunchKind(t *testing.T) {
	for _, s := range []string{"in", "out"} {
		k, err := ParsePunchKind(s)
		if err != nil || string(k) != s {
			t.Errorf("ParsePunchKind(%q) = %q, %v", s, k, err)
		}
	}

	if _, err := ParsePunchKind("IN"); !errors.Is(err, ErrInvalidPunchKind) {
		t.Errorf("expected ErrInvalidPunchKind, got %v", err)
	}
}

func TestNewPunch(t *testing.T) {
	a := NewPunch(1, PunchIn, baseDay, *at(baseDay, 9, 0, 0))
	b := NewPunch(1, PunchIn, baseDay, *at(baseDay, 9, 0, 0))

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}
	if !a.CreatedAt.IsZero() {
		t.Errorf("expected CreatedAt to be left unset, got %v", a.CreatedAt)
	}
}

func TestPair(t *testing.T) {
	punches := []*Punch{
		{Kind: PunchIn, At: *at(baseDay, 9, 5, 0)},
		{Kind: PunchOut, At: *at(baseDay, 12, 0, 0)},
		{Kind: PunchIn, At: *at(baseDay, 8, 58, 0)},
		{Kind: PunchOut, At: *at(baseDay, 17, 2, 0)},
	}

	in, out := Pair(punches)
	if in == nil || !in.Equal(*at(baseDay, 8, 58, 0)) {
		t.Errorf("check-in = %v, want 08:58", in)
	}
	if out == nil || !out.Equal(*at(baseDay, 17, 2, 0)) {
		t.Errorf("check-out = %v, want 17:02", out)
	}

	in, out = Pair(punches[:1])
	if in == nil || out != nil {
		t.Errorf("single check-in gave %v, %v", in, out)
	}

	in, out = Pair(nil)
	if in != nil || out != nil {
		t.Error("expected nil pair for no punches")
	}
}

func TestIsCheckedIn(t *testing.T) {
	if IsCheckedIn(nil) {
		t.Error("nil punch should not be checked in")
	}
	if !IsCheckedIn(&Punch{Kind: PunchIn}) {
		t.Error("latest check-in should be checked in")
	}
	if IsCheckedIn(&Punch{Kind: PunchOut}) {
		t.Error("latest check-out should not be checked in")
	}
}
