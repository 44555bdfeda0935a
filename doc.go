// Package dash converts continuous polyline paths into alternating sequences
// of drawn and skipped sub-segments, following a cyclic pattern of lengths and
// a starting phase offset. This is the behavior behind dashed strokes in
// vector graphics, as configured by SVG's stroke-dasharray and
// stroke-dashoffset properties.
//
// # Components
//
// [Pattern] is the immutable configuration: a phase offset and a non-empty
// list of positive lengths that repeat cyclically. Even-indexed lengths are
// drawn (dashes), odd-indexed lengths are skipped (gaps).
//
// [Cursor] tracks a position within the repeating pattern and answers how far
// an advance can run before the pattern changes between dash and gap. It is
// the numerical core of the package.
//
// [Dasher] drives a cursor across the straight line segments of a path,
// splitting each line geometrically at every dash/gap boundary and emitting
// [Span] values. [DashPath] wraps a Dasher into an adapter from a sequence of
// path elements to a lazy sequence of spans.
//
// # Paths
//
// [Path] is a minimal path representation built from [MoveTo], [LineTo], and
// [ClosePath] elements. The dasher only operates on straight lines; paths
// containing quadratic or cubic Bézier elements must be flattened to lines
// before dashing, and feeding a curve to [DashPath] panics. [ParseSVGPath]
// reads paths from SVG path data, and [ParseDashArray] reads pattern lengths
// from stroke-dasharray-style strings.
//
// The cmd/dashpath command exposes the package on the command line, printing
// dash and gap spans or rendering them to SVG or PNG.
package dash
