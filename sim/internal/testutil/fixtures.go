// Package testutil provides shared test fixtures for the lineup-sim engine.
// It consolidates batter profiles and float assertion helpers used across
// sim/ and sim/roster/ test packages.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/inference-sim/lineup-sim/sim"
)

// ReferenceBatter is a league-average-like season line:
// PA=600, 1B=100, 2B=30, 3B=5, HR=20, BB=60, implied outs 385.
func ReferenceBatter(t *testing.T, name string) sim.Profile {
	t.Helper()
	return MustProfile(t, name, 600, 100, 30, 5, 20, 60, 0.740)
}

// MustProfile builds a profile or fails the test.
func MustProfile(t *testing.T, name string, pa, b1, b2, b3, hr, bb int, ops float64) sim.Profile {
	t.Helper()
	p, err := sim.NewProfile(name, name, pa, b1, b2, b3, hr, bb, ops)
	if err != nil {
		t.Fatalf("NewProfile(%s): %v", name, err)
	}
	return p
}

// UniformLineup is nine copies of ReferenceBatter.
func UniformLineup(t *testing.T) sim.Lineup {
	t.Helper()
	lineup := make(sim.Lineup, sim.LineupSize)
	for i := range lineup {
		lineup[i] = ReferenceBatter(t, "avg")
	}
	return lineup
}

// MixedTeam returns nine batters spanning a wide quality range, listed in
// no particular order.
func MixedTeam(t *testing.T) []sim.Profile {
	t.Helper()
	lines := []struct {
		pa, b1, b2, b3, hr, bb int
		ops                    float64
	}{
		{600, 80, 20, 2, 8, 40, 0.610},
		{620, 110, 40, 4, 40, 90, 0.980},
		{590, 95, 28, 3, 15, 50, 0.720},
		{610, 120, 35, 8, 25, 75, 0.860},
		{580, 85, 22, 1, 10, 45, 0.650},
		{600, 100, 30, 5, 20, 60, 0.760},
		{615, 105, 33, 2, 30, 80, 0.900},
		{560, 70, 15, 1, 5, 30, 0.560},
		{600, 98, 26, 4, 18, 55, 0.730},
	}
	team := make([]sim.Profile, len(lines))
	for i, l := range lines {
		team[i] = MustProfile(t, fmt.Sprintf("b%d", i+1), l.pa, l.b1, l.b2, l.b3, l.hr, l.bb, l.ops)
	}
	return team
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
