package svg

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a small absolute margin
var approx = cmpopts.EquateApprox(0, 1e-9)

// distanceToPolyline returns the distance from p to the nearest segment
func distanceToPolyline(p Point, line Polyline) float64 {
	best := math.Inf(1)
	for i := 1; i < len(line); i++ {
		best = math.Min(best, segmentDistance(p, line[i-1], line[i]))
	}
	return best
}

// assertDistinct checks that no polyline repeats a point consecutively
func assertDistinct(t *testing.T, lines []Polyline) {
	t.Helper()
	for i, line := range lines {
		if len(line) < 2 {
			t.Errorf("polyline %d has %d points", i, len(line))
		}
		for j := 1; j < len(line); j++ {
			if line[j] == line[j-1] {
				t.Errorf("polyline %d repeats point %s at %d", i, line[j], j)
			}
		}
	}
}
