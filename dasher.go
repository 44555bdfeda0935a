package dash

import (
	"fmt"
	"iter"
)

// Span is a single dash or gap produced by dashing a path. Spans form a
// tagged union: dashes carry the geometric endpoints of the drawn
// sub-segment, while gaps are not drawn and only report their length.
type Span struct {
	Kind SpanKind
	// From is the start point of a drawn sub-segment. Only valid for dashes.
	From Point
	// To is the end point of a drawn sub-segment. Only valid for dashes.
	To Point
	// Length of the dash or gap.
	Length float64
}

func (s Span) String() string {
	if s.Kind == GapKind {
		return fmt.Sprintf("Gap(%g)", s.Length)
	}
	return fmt.Sprintf("Dash(%s, %s, %g)", s.From, s.To, s.Length)
}

// Dasher drives a [Cursor] across the straight line segments of a path,
// translating pattern state into geometric sub-segments. It holds the dash
// phase between lines of the same subpath.
//
// Most callers will want [DashPath] instead, which feeds a whole path element
// sequence through a Dasher. The Dasher itself serves callers that traverse
// their own path representation and push events one at a time.
type Dasher struct {
	cursor *Cursor
}

// NewDasher returns a dasher for the given pattern.
func NewDasher(pattern Pattern) *Dasher {
	return &Dasher{
		cursor: NewCursor(pattern),
	}
}

// BeginSubpath starts a new subpath, rewinding the dash phase to the
// pattern's starting offset. It must be called before the first line of every
// subpath.
func (d *Dasher) BeginSubpath() {
	d.cursor.Reset()
}

// DashLine dashes the straight line from one point to another, yielding one
// span per dash/gap stretch covered by the line. Dash endpoints are obtained
// by linear interpolation along the line. A zero-length line yields nothing.
//
// It returns false if yield returned false, following the iter.Seq yield
// contract.
func (d *Dasher) DashLine(from, to Point, yield func(Span) bool) bool {
	line := Line{from, to}
	length := line.Length()
	if length == 0 {
		return true
	}
	// Walk the line in pattern-sized steps. Every step consumes a positive
	// amount, so the loop terminates even for patterns much finer than the
	// line.
	pos := 0.0
	remaining := length
	for remaining > 0 {
		action := d.cursor.Advance(remaining)
		next := pos + action.Length
		var span Span
		if action.Kind == DashKind {
			sub := line.Subsegment(pos/length, next/length)
			span = Span{Kind: DashKind, From: sub.P0, To: sub.P1, Length: action.Length}
		} else {
			span = Span{Kind: GapKind, Length: action.Length}
		}
		if !yield(span) {
			return false
		}
		remaining = action.Remaining
		pos = next
	}
	return true
}

// CloseSubpath dashes the closing edge of a subpath, from the last point back
// to the subpath's first point. It is equivalent to DashLine(last, first,
// yield).
func (d *Dasher) CloseSubpath(last, first Point, yield func(Span) bool) bool {
	return d.DashLine(last, first, yield)
}

// DashPath splits a path into its dash and gap spans. It consumes a sequence
// of path elements and produces a lazy sequence of spans, valid for a single
// traversal.
//
// MoveTo elements begin a new subpath and rewind the dash phase; LineTo
// elements are dashed with the phase carried over from the previous line;
// ClosePath dashes the closing edge back to the subpath's start. The path
// must consist of straight lines only: quadratic and cubic Bézier elements
// panic, and must be flattened to lines beforehand.
func DashPath(path iter.Seq[PathElement], pattern Pattern) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		dasher := NewDasher(pattern)
		var first, last Point
		for el := range path {
			switch el.Kind {
			case MoveToKind:
				dasher.BeginSubpath()
				first = el.P0
				last = el.P0
			case LineToKind:
				if !dasher.DashLine(last, el.P0, yield) {
					return
				}
				last = el.P0
			case ClosePathKind:
				if !dasher.CloseSubpath(last, first, yield) {
					return
				}
				last = first
			case QuadToKind, CubicToKind:
				panic(fmt.Sprintf("cannot dash %s; flatten curves to lines first", el))
			default:
				panic(fmt.Sprintf("invalid PathElement kind %v", el.Kind))
			}
		}
	}
}
