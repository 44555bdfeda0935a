package dash

import (
	"fmt"
	"math"
	"slices"
)

// SpanKind distinguishes drawn from skipped portions of a dash pattern.
type SpanKind int

const (
	// A drawn portion, from an even-indexed pattern length.
	DashKind SpanKind = iota
	// A skipped portion, from an odd-indexed pattern length.
	GapKind
)

func (k SpanKind) String() string {
	switch k {
	case DashKind:
		return "Dash"
	case GapKind:
		return "Gap"
	default:
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
}

// spanKindOf classifies a pattern index by parity.
func spanKindOf(index int) SpanKind {
	if index%2 == 0 {
		return DashKind
	}
	return GapKind
}

// Action describes the result of a single [Cursor.Advance] step.
type Action struct {
	// Length is the portion of the requested distance that was consumed.
	Length float64
	// Remaining is the portion of the requested distance that was not
	// consumed because a pattern boundary was reached first. Pass it to the
	// next call to Advance to continue.
	Remaining float64
	// Kind of the pattern segment the consumed portion lies in.
	Kind SpanKind
}

// Cursor tracks a position within the repeating cycle of a dash pattern. It
// is a distance-based state machine: [Cursor.Advance] moves the position
// forward by at most the requested distance, stopping at pattern boundaries,
// and reports whether the consumed stretch is drawn or skipped.
//
// A cursor is mutated by every call to Advance and must not be shared between
// concurrent path traversals; dashing several paths concurrently requires one
// cursor per path.
type Cursor struct {
	lengths []float64
	// Prefix sums of lengths. The last element is the cycle length.
	cumulative []float64

	// Normalized starting phase, kept so the cursor can be rewound by Reset.
	initOffset float64
	initIndex  int

	// Position within the cycle, 0 <= offset < cumulative[index].
	offset float64
	// Pattern segment the cursor currently occupies.
	index int
}

// NewCursor returns a cursor positioned at the pattern's starting offset. The
// offset is normalized into [0, cycle length) using the Euclidean remainder,
// so negative and multi-cycle offsets wrap correctly.
func NewCursor(pattern Pattern) *Cursor {
	cumulative := cumulate(pattern.lengths)
	cycle := cumulative[len(cumulative)-1]
	offset := math.Mod(pattern.offset, cycle)
	if offset < 0 {
		offset += cycle
	}
	index := findIndex(offset, cumulative)
	return &Cursor{
		lengths:    slices.Clone(pattern.lengths),
		cumulative: cumulative,
		initOffset: offset,
		initIndex:  index,
		offset:     offset,
		index:      index,
	}
}

func cumulate(lengths []float64) []float64 {
	cumulative := make([]float64, len(lengths))
	sum := 0.0
	for i, l := range lengths {
		sum += l
		cumulative[i] = sum
	}
	return cumulative
}

// findIndex returns the smallest index whose cumulative length exceeds
// offset. For 0 <= offset < cycle length such an index always exists.
func findIndex(offset float64, cumulative []float64) int {
	for i, c := range cumulative {
		if c > offset {
			return i
		}
	}
	panic(fmt.Sprintf("offset %v outside of pattern cycle %v", offset, cumulative))
}

// CycleLength returns the length of one full pattern cycle, the sum of all
// pattern lengths.
func (c *Cursor) CycleLength() float64 {
	return c.cumulative[len(c.cumulative)-1]
}

// Reset rewinds the cursor to its starting phase. The dasher calls it at the
// beginning of every subpath, so that the phase is continuous within a
// subpath but does not drift across subpaths.
func (c *Cursor) Reset() {
	c.offset = c.initOffset
	c.index = c.initIndex
}

// Advance moves the cursor forward by at most distance, stopping early at the
// next pattern boundary. The returned action reports how much was consumed,
// how much of the request is left over, and whether the consumed stretch is a
// dash or a gap. Chaining calls, each passing the previous action's Remaining,
// walks an arbitrarily long distance across many pattern cycles.
func (c *Cursor) Advance(distance float64) Action {
	toBoundary := c.cumulative[c.index] - c.offset
	if toBoundary <= distance {
		// The advance reaches a pattern boundary before the requested
		// distance is used up. The consumed stretch is classified by the
		// segment it was taken from, not the one the cursor ends up in; the
		// two differ in parity only when the cycle wraps on an odd-length
		// pattern.
		kind := spanKindOf(c.index)
		if c.index < len(c.cumulative)-1 {
			c.offset = c.cumulative[c.index]
			c.index++
		} else {
			// Start a new cycle.
			c.index = 0
			c.offset = 0
		}
		return Action{
			Length:    toBoundary,
			Remaining: distance - toBoundary,
			Kind:      kind,
		}
	}
	// The request is absorbed entirely within the current pattern segment.
	c.offset += distance
	return Action{
		Length:    distance,
		Remaining: 0,
		Kind:      spanKindOf(c.index),
	}
}
