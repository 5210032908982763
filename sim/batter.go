// sim/batter.go
package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Profile is a batter's season line. It is immutable after NewProfile.
type Profile struct {
	ID       string
	Name     string
	PA       int     // plate appearances
	Singles  int     // 1B
	Doubles  int     // 2B
	Triples  int     // 3B
	HomeRuns int     // HR
	Walks    int     // BB + IBB + HBP
	OPS      float64 // on-base plus slugging, used only to rank batters
}

// NewProfile validates the counts and returns a Profile. Outs are implied:
// PA minus every other outcome.
func NewProfile(id, name string, pa, singles, doubles, triples, homeRuns, walks int, ops float64) (Profile, error) {
	p := Profile{
		ID:       id,
		Name:     name,
		PA:       pa,
		Singles:  singles,
		Doubles:  doubles,
		Triples:  triples,
		HomeRuns: homeRuns,
		Walks:    walks,
		OPS:      ops,
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks that the counts describe a probability distribution.
func (p Profile) Validate() error {
	if p.PA <= 0 {
		return fmt.Errorf("%w: %s: plate appearances must be positive, got %d", ErrMalformedProfile, p.label(), p.PA)
	}
	counts := []struct {
		name string
		n    int
	}{{"1B", p.Singles}, {"2B", p.Doubles}, {"3B", p.Triples}, {"HR", p.HomeRuns}, {"BB", p.Walks}}
	for _, c := range counts {
		if c.n < 0 {
			return fmt.Errorf("%w: %s: %s must be non-negative, got %d", ErrMalformedProfile, p.label(), c.name, c.n)
		}
	}
	if p.Outs() < 0 {
		return fmt.Errorf("%w: %s: outcomes sum to %d, above %d plate appearances",
			ErrMalformedProfile, p.label(), p.PA-p.Outs(), p.PA)
	}
	if math.IsNaN(p.OPS) || math.IsInf(p.OPS, 0) {
		return fmt.Errorf("%w: %s: OPS must be finite, got %f", ErrMalformedProfile, p.label(), p.OPS)
	}
	return nil
}

// Outs is the implied out count.
func (p Profile) Outs() int {
	return p.PA - p.Singles - p.Doubles - p.Triples - p.HomeRuns - p.Walks
}

// Rates returns count/PA for each outcome.
func (p Profile) Rates() Rates {
	pa := float64(p.PA)
	return Rates{
		Walk:    float64(p.Walks) / pa,
		Single:  float64(p.Singles) / pa,
		Double:  float64(p.Doubles) / pa,
		Triple:  float64(p.Triples) / pa,
		HomeRun: float64(p.HomeRuns) / pa,
		Out:     float64(p.Outs()) / pa,
	}
}

func (p Profile) label() string {
	if p.Name != "" {
		return p.Name
	}
	if p.ID != "" {
		return p.ID
	}
	return "batter"
}

// Rates is the probability of each Outcome on a plate appearance.
type Rates [NumOutcomes]float64

// rateTolerance bounds how far the rates may drift from summing to 1.
const rateTolerance = 1e-9

// Validate checks that r is a probability distribution over the outcomes.
func (r Rates) Validate() error {
	for o, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s rate must be a finite non-negative number, got %f", ErrMalformedProfile, Outcome(o), v)
		}
	}
	if sum := floats.Sum(r[:]); math.Abs(sum-1) > rateTolerance {
		return fmt.Errorf("%w: rates sum to %.12f, want 1", ErrMalformedProfile, sum)
	}
	return nil
}

// AverageRates returns the elementwise mean of the batters' rates. It is
// the "average batter" the optimizer fills empty slots with.
func AverageRates(batters []Profile) Rates {
	var avg Rates
	if len(batters) == 0 {
		return avg
	}
	for _, b := range batters {
		r := b.Rates()
		floats.Add(avg[:], r[:])
	}
	floats.Scale(1/float64(len(batters)), avg[:])
	return avg
}
