package dash

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// ParseSVGPath parses SVG path data into a path. It supports the moveto,
// lineto, horizontal/vertical lineto, quadratic and cubic Bézier, and
// closepath commands (MmLlHhVvQqCcZz), in both absolute and relative form,
// with implicit command repetition.
//
// Note that paths containing Bézier commands parse fine but cannot be dashed
// directly; they must be flattened to lines first.
func ParseSVGPath(s string) (Path, error) {
	b := []byte(s)
	var p Path
	var prevCmd byte
	i := 0
	parseNum := func() (float64, error) {
		i += skipCommaWhitespace(b[i:])
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return 0, fmt.Errorf("bad number at position %d in path data %q", i, s)
		}
		i += n
		return f, nil
	}
	parseNums := func(nums []float64) error {
		for j := range nums {
			f, err := parseNum()
			if err != nil {
				return err
			}
			nums[j] = f
		}
		return nil
	}

	for i < len(b) {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			break
		}
		cmd := prevCmd
		if b[i] >= 'A' {
			cmd = b[i]
			i++
		} else if cmd == 'Z' || cmd == 'z' {
			// Closepath takes no coordinates, so it cannot repeat implicitly.
			return nil, fmt.Errorf("coordinates after closepath at position %d in path data %q", i, s)
		}
		x, y := p.Pos().Splat()
		switch cmd {
		case 'M', 'm':
			var n [2]float64
			if err := parseNums(n[:]); err != nil {
				return nil, err
			}
			if cmd == 'm' {
				n[0] += x
				n[1] += y
			}
			p.MoveTo(Pt(n[0], n[1]))
			// Subsequent implicit pairs are linetos.
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l':
			var n [2]float64
			if err := parseNums(n[:]); err != nil {
				return nil, err
			}
			if cmd == 'l' {
				n[0] += x
				n[1] += y
			}
			p.LineTo(Pt(n[0], n[1]))
		case 'H', 'h':
			a, err := parseNum()
			if err != nil {
				return nil, err
			}
			if cmd == 'h' {
				a += x
			}
			p.LineTo(Pt(a, y))
		case 'V', 'v':
			a, err := parseNum()
			if err != nil {
				return nil, err
			}
			if cmd == 'v' {
				a += y
			}
			p.LineTo(Pt(x, a))
		case 'Q', 'q':
			var n [4]float64
			if err := parseNums(n[:]); err != nil {
				return nil, err
			}
			if cmd == 'q' {
				n[0] += x
				n[1] += y
				n[2] += x
				n[3] += y
			}
			p.QuadTo(Pt(n[0], n[1]), Pt(n[2], n[3]))
		case 'C', 'c':
			var n [6]float64
			if err := parseNums(n[:]); err != nil {
				return nil, err
			}
			if cmd == 'c' {
				n[0] += x
				n[1] += y
				n[2] += x
				n[3] += y
				n[4] += x
				n[5] += y
			}
			p.CubicTo(Pt(n[0], n[1]), Pt(n[2], n[3]), Pt(n[4], n[5]))
		case 'Z', 'z':
			p.Close()
		case 0:
			return nil, fmt.Errorf("path data %q doesn't start with a command", s)
		default:
			return nil, fmt.Errorf("unknown command %q at position %d in path data %q", cmd, i-1, s)
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParseSVGPath is like [ParseSVGPath] but panics on invalid path data.
func MustParseSVGPath(s string) Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseDashArray parses a stroke-dasharray-style list of lengths, separated
// by commas and/or whitespace. It only checks that the input is numeric;
// validation of the lengths themselves is left to [NewPattern]. An empty
// string parses to no lengths.
func ParseDashArray(s string) ([]float64, error) {
	b := []byte(s)
	var lengths []float64
	i := 0
	for i < len(b) {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			break
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("bad number at position %d in dash array %q", i, s)
		}
		lengths = append(lengths, f)
		i += n
	}
	return lengths, nil
}
