package sim

import (
	"gonum.org/v1/gonum/floats"
)

const (
	// MaxRuns is the last run bucket; it collects every total of MaxRuns or more.
	MaxRuns = 20
	// NumRunBuckets is the number of rows in the run-layered probability table.
	NumRunBuckets = MaxRuns + 1
)

// runValues is 0, 1, ..., MaxRuns for weighting buckets.
var runValues = func() []float64 {
	v := make([]float64, NumRunBuckets)
	for r := range v {
		v[r] = float64(r)
	}
	return v
}()

// Distribution is the probability of finishing the game with exactly r runs,
// for r in [0, MaxRuns). The last entry is MaxRuns or more.
type Distribution [NumRunBuckets]float64

// ExpectedRuns returns Σ r·P(r). The top bucket counts as MaxRuns.
func (d Distribution) ExpectedRuns() float64 {
	return floats.Dot(runValues, d[:])
}

// Total returns the probability mass in the distribution. It is below 1 by
// the mass the chain had not absorbed when it stopped.
func (d Distribution) Total() float64 {
	return floats.Sum(d[:])
}

// AtLeast returns P(runs >= n).
func (d Distribution) AtLeast(n int) float64 {
	if n <= 0 {
		return d.Total()
	}
	if n > MaxRuns {
		return 0
	}
	return floats.Sum(d[n:])
}

// MatchupOdds is the outcome of two independent run distributions facing
// each other over nine innings.
type MatchupOdds struct {
	HomeWin float64
	AwayWin float64
	Tie     float64 // regulation ties; extra innings are not modeled
}

// Matchup compares two run distributions as independent random variables.
// Scores tied in the MaxRuns bucket count as ties.
func Matchup(home, away Distribution) MatchupOdds {
	var odds MatchupOdds
	for i := 0; i < NumRunBuckets; i++ {
		for j := 0; j < NumRunBuckets; j++ {
			p := home[i] * away[j]
			switch {
			case i > j:
				odds.HomeWin += p
			case i < j:
				odds.AwayWin += p
			default:
				odds.Tie += p
			}
		}
	}
	return odds
}
