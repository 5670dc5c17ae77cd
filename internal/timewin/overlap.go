package timewin

import "time"

// referenceDay is the arbitrary day both sides of a comparison are anchored to.
var referenceDay = time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC)

// align resolves the candidate and container pair on one timeline.
// When the container wraps past midnight and the candidate ends before the
// container starts, the candidate belongs to the container's second day.
func align(cStart, cEnd, wStart, wEnd, layout string) (candidate, container *Window) {
	container = Resolve(wStart, wEnd, referenceDay, WithLayout(layout))
	candidate = Resolve(cStart, cEnd, referenceDay, WithLayout(layout))
	if container == nil || candidate == nil {
		return nil, nil
	}
	if container.IsOverNight && candidate.End.Before(container.Start) {
		candidate = candidate.Shift(1)
	}
	return candidate, container
}

// Overlaps reports whether interval a shares any instant with interval b.
// b is the container (a shift or working window), a the candidate (a break).
// Touching endpoints are adjacency, not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd, layout string) bool {
	a, b := align(aStart, aEnd, bStart, bEnd, layout)
	if a == nil {
		return false
	}
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// ContainedWithin reports whether the break lies entirely inside the window.
// A break may start or end exactly on the window boundary.
func ContainedWithin(brkStart, brkEnd, winStart, winEnd, layout string) bool {
	startOK, endOK, ok := Containment(brkStart, brkEnd, winStart, winEnd, layout)
	return ok && startOK && endOK
}

// Containment reports both sides of the containment check separately.
// ok is false when either interval does not resolve.
func Containment(brkStart, brkEnd, winStart, winEnd, layout string) (startOK, endOK, ok bool) {
	brk, win := align(brkStart, brkEnd, winStart, winEnd, layout)
	if brk == nil {
		return false, false, false
	}
	return !brk.Start.Before(win.Start), !brk.End.After(win.End), true
}

// OverlapMinutes returns how many minutes interval a shares with interval b.
// Returns 0 if there is no overlap or either interval does not resolve.
func OverlapMinutes(aStart, aEnd, bStart, bEnd, layout string) int {
	a, b := align(aStart, aEnd, bStart, bEnd, layout)
	if a == nil {
		return 0
	}

	overlapStart := a.Start
	if b.Start.After(overlapStart) {
		overlapStart = b.Start
	}
	overlapEnd := a.End
	if b.End.Before(overlapEnd) {
		overlapEnd = b.End
	}

	if !overlapEnd.After(overlapStart) {
		return 0
	}
	return int(overlapEnd.Sub(overlapStart) / time.Minute)
}
