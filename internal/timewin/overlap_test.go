package timewin

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                 string
		brkStart, brkEnd     string
		shiftStart, shiftEnd string
		want                 bool
	}{
		{
			name:     "adjacent before shift",
			brkStart: "07:00", brkEnd: "08:00",
			shiftStart: "08:00", shiftEnd: "10:00",
			want: false,
		},
		{
			name:     "one minute overlap at start",
			brkStart: "07:59", brkEnd: "08:01",
			shiftStart: "08:00", shiftEnd: "10:00",
			want: true,
		},
		{
			name:     "overnight shift and overnight break",
			brkStart: "23:59", brkEnd: "00:30",
			shiftStart: "22:00", shiftEnd: "02:00",
			want: true,
		},
		{
			name:     "adjacent after shift",
			brkStart: "10:00", brkEnd: "11:00",
			shiftStart: "08:00", shiftEnd: "10:00",
			want: false,
		},
		{
			name:     "inside shift",
			brkStart: "12:00", brkEnd: "12:30",
			shiftStart: "09:00", shiftEnd: "17:00",
			want: true,
		},
		{
			name:     "after midnight inside overnight shift",
			brkStart: "01:00", brkEnd: "01:30",
			shiftStart: "22:00", shiftEnd: "06:00",
			want: true,
		},
		{
			name:     "morning break outside overnight shift",
			brkStart: "07:00", brkEnd: "08:00",
			shiftStart: "22:00", shiftEnd: "06:00",
			want: false,
		},
		{
			name:     "break touching overnight shift end",
			brkStart: "06:00", brkEnd: "06:30",
			shiftStart: "22:00", shiftEnd: "06:00",
			want: false,
		},
		{
			name:     "unresolvable break",
			brkStart: "12:00", brkEnd: "12:00",
			shiftStart: "09:00", shiftEnd: "17:00",
			want: false,
		},
		{
			name:     "unresolvable shift",
			brkStart: "12:00", brkEnd: "12:30",
			shiftStart: "25:00", shiftEnd: "17:00",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.brkStart, tt.brkEnd, tt.shiftStart, tt.shiftEnd, FormatHHMM)
			if got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.brkStart, tt.brkEnd, tt.shiftStart, tt.shiftEnd, got, tt.want)
			}
		})
	}
}

func TestContainment(t *testing.T) {
	tests := []struct {
		name             string
		brkStart, brkEnd string
		winStart, winEnd string
		wantStartOK      bool
		wantEndOK        bool
		wantOK           bool
	}{
		{
			name:     "inside",
			brkStart: "12:00", brkEnd: "13:00",
			winStart: "09:00", winEnd: "17:00",
			wantStartOK: true, wantEndOK: true, wantOK: true,
		},
		{
			name:     "exactly the window",
			brkStart: "09:00", brkEnd: "17:00",
			winStart: "09:00", winEnd: "17:00",
			wantStartOK: true, wantEndOK: true, wantOK: true,
		},
		{
			name:     "starts too early",
			brkStart: "08:30", brkEnd: "09:30",
			winStart: "09:00", winEnd: "17:00",
			wantStartOK: false, wantEndOK: true, wantOK: true,
		},
		{
			name:     "ends too late",
			brkStart: "16:30", brkEnd: "17:30",
			winStart: "09:00", winEnd: "17:00",
			wantStartOK: true, wantEndOK: false, wantOK: true,
		},
		{
			name:     "both sides outside",
			brkStart: "08:00", brkEnd: "18:00",
			winStart: "09:00", winEnd: "17:00",
			wantStartOK: false, wantEndOK: false, wantOK: true,
		},
		{
			name:     "after midnight within overnight window",
			brkStart: "02:00", brkEnd: "02:30",
			winStart: "22:00", winEnd: "06:00",
			wantStartOK: true, wantEndOK: true, wantOK: true,
		},
		{
			name:     "crossing midnight within overnight window",
			brkStart: "23:30", brkEnd: "00:30",
			winStart: "22:00", winEnd: "06:00",
			wantStartOK: true, wantEndOK: true, wantOK: true,
		},
		{
			name:     "overnight break in day window",
			brkStart: "23:00", brkEnd: "01:00",
			winStart: "09:00", winEnd: "17:00",
			wantStartOK: true, wantEndOK: false, wantOK: true,
		},
		{
			name:     "unresolvable",
			brkStart: "bad", brkEnd: "01:00",
			winStart: "09:00", winEnd: "17:00",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startOK, endOK, ok := Containment(tt.brkStart, tt.brkEnd, tt.winStart, tt.winEnd, FormatHHMM)
			if startOK != tt.wantStartOK || endOK != tt.wantEndOK || ok != tt.wantOK {
				t.Errorf("Containment(%s-%s, %s-%s) = (%v, %v, %v), want (%v, %v, %v)",
					tt.brkStart, tt.brkEnd, tt.winStart, tt.winEnd,
					startOK, endOK, ok, tt.wantStartOK, tt.wantEndOK, tt.wantOK)
			}

			want := tt.wantOK && tt.wantStartOK && tt.wantEndOK
			if got := ContainedWithin(tt.brkStart, tt.brkEnd, tt.winStart, tt.winEnd, FormatHHMM); got != want {
				t.Errorf("ContainedWithin = %v, want %v", got, want)
			}
		})
	}
}

// hourGrid returns every whole hour of the day as "HH:00".
func hourGrid() []string {
	grid := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		grid = append(grid, MinutesToTime(h*60))
	}
	return grid
}

func TestOverlapsGrid(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive grid")
	}
	grid := hourGrid()

	for _, bs := range grid {
		for _, be := range grid {
			for _, as := range grid {
				for _, ae := range grid {
					got := Overlaps(as, ae, bs, be, FormatHHMM)
					contained := ContainedWithin(as, ae, bs, be, FormatHHMM)

					a, b := align(as, ae, bs, be, FormatHHMM)
					if a == nil {
						if got || contained {
							t.Fatalf("%s-%s vs %s-%s: unresolvable pair reported overlap=%v contained=%v", as, ae, bs, be, got, contained)
						}
						continue
					}

					disjoint := !a.End.After(b.Start) || !a.Start.Before(b.End)
					if got != !disjoint {
						t.Fatalf("Overlaps(%s-%s, %s-%s) = %v, want %v", as, ae, bs, be, got, !disjoint)
					}
					if contained && !got {
						t.Fatalf("%s-%s contained in %s-%s but not overlapping", as, ae, bs, be)
					}
				}
			}
		}
	}
}

func TestOverlapMinutes(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       int
	}{
		{
			name:   "no overlap - adjacent",
			start1: "09:00", end1: "10:00",
			start2: "10:00", end2: "11:00",
			want: 0,
		},
		{
			name:   "partial overlap",
			start1: "09:00", end1: "10:30",
			start2: "10:00", end2: "11:00",
			want: 30,
		},
		{
			name:   "one inside other",
			start1: "10:00", end1: "11:00",
			start2: "09:00", end2: "12:00",
			want: 60,
		},
		{
			name:   "overnight window",
			start1: "23:30", end1: "00:30",
			start2: "22:00", end2: "00:00",
			want: 30,
		},
		{
			name:   "invalid input",
			start1: "09:00", end1: "09:00",
			start2: "08:00", end2: "10:00",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlapMinutes(tt.start1, tt.end1, tt.start2, tt.end2, FormatHHMM)
			if got != tt.want {
				t.Errorf("OverlapMinutes(%s-%s, %s-%s) = %d, want %d",
					tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}
		})
	}
}
