package dash

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidPattern is returned by [NewPattern] when the list of lengths is
// empty or contains a length that isn't strictly positive.
var ErrInvalidPattern = errors.New("invalid dash pattern")

// Pattern describes a dash pattern: a list of lengths that repeats
// cyclically, and an offset at which the pattern starts. Even-indexed lengths
// are drawn, odd-indexed lengths are skipped.
//
// Pattern is an immutable value; valid patterns can only be obtained from
// [NewPattern] or [MustPattern].
type Pattern struct {
	offset  float64
	lengths []float64
}

// NewPattern returns a pattern that starts at the given offset into the cycle
// of lengths. The offset may be negative or exceed the cycle length.
//
// It returns an error wrapping [ErrInvalidPattern] if lengths is empty or any
// length is zero or negative. Lengths are copied; later modification of the
// argument doesn't affect the pattern.
func NewPattern(offset float64, lengths []float64) (Pattern, error) {
	if len(lengths) == 0 {
		return Pattern{}, fmt.Errorf("%w: no lengths", ErrInvalidPattern)
	}
	for i, l := range lengths {
		if l <= 0 {
			return Pattern{}, fmt.Errorf("%w: length %v at index %d is not positive", ErrInvalidPattern, l, i)
		}
	}
	return Pattern{
		offset:  offset,
		lengths: slices.Clone(lengths),
	}, nil
}

// MustPattern is like [NewPattern] but panics if the pattern is invalid. It
// simplifies using patterns that are known to be valid, as in tests or static
// configuration.
func MustPattern(offset float64, lengths ...float64) Pattern {
	p, err := NewPattern(offset, lengths)
	if err != nil {
		panic(err)
	}
	return p
}

// Offset returns the pattern's starting offset.
func (p Pattern) Offset() float64 {
	return p.offset
}

// Lengths returns a copy of the pattern's lengths.
func (p Pattern) Lengths() []float64 {
	return slices.Clone(p.lengths)
}
