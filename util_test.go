package dash

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxEq(t *testing.T, want, got, epsilon float64) {
	t.Helper()
	if math.Abs(want-got) > epsilon {
		t.Errorf("got %v, want %v (within %v)", got, want, epsilon)
	}
}
