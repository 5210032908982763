// sim/transition.go
package sim

import (
	"gonum.org/v1/gonum/mat"
)

// MaxRunsPerPlay is the most runs a single plate appearance can score
// (a grand slam).
const MaxRunsPerPlay = 4

// TransitionFamily is one batter's transition structure: P[r] is the
// NumStates×NumStates matrix whose entry (i, j) is the probability that a
// plate appearance in state i scores r runs and leaves the game in state j.
// For every state i, the entries of row i summed over all P[r] equal 1.
//
// A family is read-only once built and may be shared between goroutines.
type TransitionFamily struct {
	P [MaxRunsPerPlay + 1]*mat.Dense
}

// BuildTransitionFamily returns the transition family of a batter.
func BuildTransitionFamily(p Profile) (*TransitionFamily, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return NewTransitionFamily(p.Rates())
}

// NewTransitionFamily builds a family directly from outcome rates. Used for
// the synthetic team-average batter, which has no integer counts.
func NewTransitionFamily(r Rates) (*TransitionFamily, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	f := &TransitionFamily{}
	for runs := range f.P {
		f.P[runs] = mat.NewDense(NumStates, NumStates, nil)
	}
	f.P[0].Set(int(AbsorbingState), int(AbsorbingState), 1)

	for i := 0; i < NumActiveStates; i++ {
		for o, rate := range r {
			if rate == 0 {
				continue
			}
			t := outcomeTable[i][o]
			m := f.P[t.runs]
			m.Set(i, int(t.next), m.At(i, int(t.next))+rate)
		}
	}
	return f, nil
}

// RowSum returns the total probability leaving state i across all run
// counts. It is 1 for every state of a valid family.
func (f *TransitionFamily) RowSum(i StateID) float64 {
	var sum float64
	for _, m := range f.P {
		sum += mat.Sum(m.RowView(int(i)))
	}
	return sum
}
