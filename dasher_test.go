package dash

import (
	"slices"
	"testing"
)

func collectSpans(d *Dasher, from, to Point) []Span {
	var spans []Span
	d.DashLine(from, to, func(s Span) bool {
		spans = append(spans, s)
		return true
	})
	return spans
}

func TestDashLine(t *testing.T) {
	want := []Span{
		{Kind: DashKind, From: Pt(0, 0), To: Pt(1, 0), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(3, 0), To: Pt(4, 0), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(6, 0), To: Pt(7, 0), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(9, 0), To: Pt(10, 0), Length: 1},
	}
	d := NewDasher(MustPattern(0, 1, 2))
	d.BeginSubpath()
	got := collectSpans(d, Pt(0, 0), Pt(10, 0))
	diff(t, want, got, approx)

	total := 0.0
	for _, s := range got {
		total += s.Length
	}
	approxEq(t, 10, total, 1e-9)
}

func TestDashLineOffset(t *testing.T) {
	// The offset of 3 skips the first dash and cuts into the first gap.
	want := []Span{
		{Kind: GapKind, Length: 3},
		{Kind: DashKind, From: Pt(3, 0), To: Pt(5, 0), Length: 2},
		{Kind: GapKind, Length: 5},
		{Kind: DashKind, From: Pt(10, 0), To: Pt(11, 0), Length: 1},
		{Kind: GapKind, Length: 5},
		{Kind: DashKind, From: Pt(16, 0), To: Pt(18, 0), Length: 2},
		{Kind: GapKind, Length: 3},
	}
	got := slices.Collect(DashPath(MustParseSVGPath("M0 0 L21 0").Elements(), MustPattern(3, 1, 5, 2, 5)))
	diff(t, want, got, approx)
}

func TestDashLineNegativeOffset(t *testing.T) {
	// -1 normalizes to 2, one unit into the gap.
	want := []Span{
		{Kind: GapKind, Length: 1},
		{Kind: DashKind, From: Pt(1, 0), To: Pt(2, 0), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(4, 0), To: Pt(5, 0), Length: 1},
		{Kind: GapKind, Length: 1},
	}
	d := NewDasher(MustPattern(-1, 1, 2))
	d.BeginSubpath()
	diff(t, want, collectSpans(d, Pt(0, 0), Pt(6, 0)), approx)
}

func TestDashZeroLengthLine(t *testing.T) {
	d := NewDasher(MustPattern(0.5, 1, 2))
	d.BeginSubpath()
	offset, index := d.cursor.offset, d.cursor.index
	if got := collectSpans(d, Pt(1, 1), Pt(1, 1)); len(got) != 0 {
		t.Errorf("got %v for a zero-length line, want no spans", got)
	}
	if d.cursor.offset != offset || d.cursor.index != index {
		t.Error("a zero-length line changed the cursor state")
	}
}

// The dash phase is carried across the lines of a subpath, including the
// closing edge.
func TestDashPathSquare(t *testing.T) {
	want := []Span{
		{Kind: DashKind, From: Pt(0, 0), To: Pt(1, 0), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(3, 0), To: Pt(3, 1), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(3, 3), To: Pt(2, 3), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(0, 3), To: Pt(0, 2), Length: 1},
		{Kind: GapKind, Length: 2},
	}
	got := slices.Collect(DashPath(MustParseSVGPath("M0 0 L3 0 L3 3 L0 3 Z").Elements(), MustPattern(0, 1, 2)))
	diff(t, want, got, approx)
}

func TestDashPathPolyline(t *testing.T) {
	want := []Span{
		// (0,0) to (10,0)
		{Kind: DashKind, From: Pt(0, 0), To: Pt(1, 0), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(3, 0), To: Pt(4, 0), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(6, 0), To: Pt(7, 0), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(9, 0), To: Pt(10, 0), Length: 1},
		// (10,0) to (10,10); the previous dash ended exactly on the
		// dash/gap boundary, so this line starts with a full gap.
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(10, 2), To: Pt(10, 3), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(10, 5), To: Pt(10, 6), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(10, 8), To: Pt(10, 9), Length: 1},
		{Kind: GapKind, Length: 1},
		// (10,10) to (20,10)
		{Kind: GapKind, Length: 1},
		{Kind: DashKind, From: Pt(11, 10), To: Pt(12, 10), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(14, 10), To: Pt(15, 10), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(17, 10), To: Pt(18, 10), Length: 1},
		{Kind: GapKind, Length: 2},
		// (20,10) to (20,1.5)
		{Kind: DashKind, From: Pt(20, 10), To: Pt(20, 9), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(20, 7), To: Pt(20, 6), Length: 1},
		{Kind: GapKind, Length: 2},
		{Kind: DashKind, From: Pt(20, 4), To: Pt(20, 3), Length: 1},
		{Kind: GapKind, Length: 1.5},
	}
	path := MustParseSVGPath("M0 0 L10 0 L10 10 L20 10 L20 1.5")
	got := slices.Collect(DashPath(path.Elements(), MustPattern(0, 1, 2)))
	diff(t, want, got, approx)

	total := 0.0
	for _, s := range got {
		total += s.Length
	}
	approxEq(t, 38.5, total, 1e-9)
}

// The dash phase resets at every subpath start, so the dashing of a subpath
// doesn't depend on the subpaths traversed before it.
func TestDashPathPhaseResetsPerSubpath(t *testing.T) {
	want := []Span{
		{Kind: DashKind, From: Pt(0, 0), To: Pt(1, 0), Length: 1},
		{Kind: GapKind, Length: 0.5},
		{Kind: DashKind, From: Pt(0, 10), To: Pt(1, 10), Length: 1},
		{Kind: GapKind, Length: 2},
	}
	got := slices.Collect(DashPath(MustParseSVGPath("M0 0 L1.5 0 M0 10 L3 10").Elements(), MustPattern(0, 1, 2)))
	diff(t, want, got, approx)
}

func TestDashPathEarlyBreak(t *testing.T) {
	n := 0
	for range DashPath(MustParseSVGPath("M0 0 L100 0").Elements(), MustPattern(0, 1, 1)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d spans, want 3", n)
	}
}

func TestDashPathRejectsCurves(t *testing.T) {
	paths := map[string]Path{
		"quadratic": MustParseSVGPath("M0 0 Q1 1 2 0"),
		"cubic":     MustParseSVGPath("M0 0 C1 1 2 1 3 0"),
	}
	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("dashing a %s Bézier didn't panic", name)
				}
			}()
			for range DashPath(path.Elements(), MustPattern(0, 1, 2)) {
			}
		})
	}
}
