package dash

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is the element of a path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a path represented as a slice of path elements.
type Path []PathElement

func (p *Path) MoveTo(pt Point)          { *p = append(*p, MoveTo(pt)) }
func (p *Path) LineTo(pt Point)          { *p = append(*p, LineTo(pt)) }
func (p *Path) QuadTo(p0, p1 Point)      { *p = append(*p, QuadTo(p0, p1)) }
func (p *Path) CubicTo(p0, p1, p2 Point) { *p = append(*p, CubicTo(p0, p1, p2)) }
func (p *Path) Close()                   { *p = append(*p, ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] {
	return slices.Values(p)
}

// Pos returns the current position of the pen, that is the end point of the
// path's last element. Closing a subpath moves the pen back to the subpath's
// start.
func (p Path) Pos() Point {
	for i := len(p) - 1; i >= 0; i-- {
		switch el := p[i]; el.Kind {
		case MoveToKind, LineToKind:
			return el.P0
		case QuadToKind:
			return el.P1
		case CubicToKind:
			return el.P2
		case ClosePathKind:
			for j := i - 1; j >= 0; j-- {
				if p[j].Kind == MoveToKind {
					return p[j].P0
				}
			}
			return Point{}
		}
	}
	return Point{}
}
