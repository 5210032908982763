// sim/chain.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LineupSize is the number of batters in a batting order.
const LineupSize = 9

const (
	// DefaultMaxIterations caps the number of plate appearances simulated.
	DefaultMaxIterations = 1000
	// DefaultAbsorptionThreshold is the absorbed mass at which a chain
	// counts as converged.
	DefaultAbsorptionThreshold = 0.999
)

// Lineup is a batting order. Batters come up in slice order and wrap
// around after the ninth.
type Lineup []Profile

// Validate checks the lineup size and every batter's counts.
func (l Lineup) Validate() error {
	if len(l) != LineupSize {
		return fmt.Errorf("%w, got %d", ErrLineupSize, len(l))
	}
	for i, p := range l {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("slot %d: %w", i+1, err)
		}
	}
	return nil
}

// Families builds the transition family for each slot. Identical profiles
// share one family.
func (l Lineup) Families() ([]*TransitionFamily, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	built := make(map[Profile]*TransitionFamily, len(l))
	families := make([]*TransitionFamily, len(l))
	for i, p := range l {
		f, ok := built[p]
		if !ok {
			var err error
			if f, err = BuildTransitionFamily(p); err != nil {
				return nil, fmt.Errorf("slot %d: %w", i+1, err)
			}
			built[p] = f
		}
		families[i] = f
	}
	return families, nil
}

// ChainConfig controls where a chain starts and when it stops.
type ChainConfig struct {
	StartState          StateID // game state before the first plate appearance
	StartBatter         int     // lineup index of the first batter, 0..8
	MaxIterations       int     // plate appearances before giving up (must be > 0)
	AbsorptionThreshold float64 // absorbed mass that ends the chain, in (0, 1]
}

// DefaultChainConfig starts a full game with the leadoff batter.
func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		StartState:          StartState,
		StartBatter:         0,
		MaxIterations:       DefaultMaxIterations,
		AbsorptionThreshold: DefaultAbsorptionThreshold,
	}
}

// Validate checks the configuration.
func (c ChainConfig) Validate() error {
	if !c.StartState.Valid() {
		return fmt.Errorf("%w: start state %d", ErrInvalidStateID, c.StartState)
	}
	if c.StartBatter < 0 || c.StartBatter >= LineupSize {
		return fmt.Errorf("%w: start batter %d not in [0, %d]", ErrInvalidBatterIndex, c.StartBatter, LineupSize-1)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}
	if !(c.AbsorptionThreshold > 0 && c.AbsorptionThreshold <= 1) {
		return fmt.Errorf("absorption threshold must be in (0, 1], got %f", c.AbsorptionThreshold)
	}
	return nil
}

// Result is the outcome of a chain simulation.
type Result struct {
	Distribution Distribution // run distribution of the absorbed mass
	Iterations   int          // plate appearances simulated
	AbsorbedMass float64      // mass in the absorbing state at stop time
	Converged    bool         // AbsorbedMass reached the threshold
}

// ExpectedRuns is a shorthand for r.Distribution.ExpectedRuns().
func (r *Result) ExpectedRuns() float64 {
	return r.Distribution.ExpectedRuns()
}

// Err returns ErrNonConvergence when the chain stopped at the iteration cap.
func (r *Result) Err() error {
	if r.Converged {
		return nil
	}
	return fmt.Errorf("%w: absorbed mass %.6f after %d iterations", ErrNonConvergence, r.AbsorbedMass, r.Iterations)
}

// Simulate runs the chain for a lineup.
func Simulate(lineup Lineup, cfg ChainConfig) (*Result, error) {
	families, err := lineup.Families()
	if err != nil {
		return nil, err
	}
	return SimulateFamilies(families, cfg)
}

// SimulateFamilies runs the chain on prebuilt transition families, one per
// lineup slot. Hitting MaxIterations is not an error: the partial result is
// returned with Converged unset.
func SimulateFamilies(families []*TransitionFamily, cfg ChainConfig) (*Result, error) {
	if len(families) != LineupSize {
		return nil, fmt.Errorf("%w, got %d", ErrLineupSize, len(families))
	}
	for i, f := range families {
		if f == nil {
			return nil, fmt.Errorf("slot %d: nil transition family", i+1)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := newChain(cfg.StartState)
	batter := cfg.StartBatter
	iterations := 0
	absorbed := c.absorbed()
	for absorbed < cfg.AbsorptionThreshold && iterations < cfg.MaxIterations {
		c.step(families[batter])
		batter = (batter + 1) % LineupSize
		iterations++
		absorbed = c.absorbed()
	}

	res := &Result{
		Iterations:   iterations,
		AbsorbedMass: absorbed,
		Converged:    absorbed >= cfg.AbsorptionThreshold,
	}
	for r := range res.Distribution {
		res.Distribution[r] = c.u.At(r, int(AbsorbingState))
	}
	if !res.Converged {
		logrus.Warnf("chain stopped at %d iterations with absorbed mass %.6f (threshold %.6f)",
			iterations, absorbed, cfg.AbsorptionThreshold)
	} else {
		logrus.Debugf("chain converged after %d iterations, absorbed mass %.6f", iterations, absorbed)
	}
	return res, nil
}

// ExpectedRemainingRuns returns the runs the lineup is expected to score
// from start until the end of the game, with lineup[batterUp] at the plate.
func ExpectedRemainingRuns(lineup Lineup, batterUp int, start State) (float64, error) {
	if !start.Valid() {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidStateID, start)
	}
	cfg := DefaultChainConfig()
	cfg.StartState = start.ID()
	cfg.StartBatter = batterUp
	res, err := Simulate(lineup, cfg)
	if err != nil {
		return 0, err
	}
	return res.ExpectedRuns(), nil
}

// chain holds the run-layered probability table: row r of u is the mass in
// each game state after exactly r runs. Mass that would pass MaxRuns stays in
// the last row, so the table always sums to 1.
type chain struct {
	u, next         *mat.Dense
	uRows, nextRows [NumRunBuckets]*mat.VecDense
	tmp             *mat.VecDense
}

func newChain(start StateID) *chain {
	c := &chain{
		u:    mat.NewDense(NumRunBuckets, NumStates, nil),
		next: mat.NewDense(NumRunBuckets, NumStates, nil),
		tmp:  mat.NewVecDense(NumStates, nil),
	}
	for r := 0; r < NumRunBuckets; r++ {
		c.uRows[r] = mat.NewVecDense(NumStates, c.u.RawRowView(r))
		c.nextRows[r] = mat.NewVecDense(NumStates, c.next.RawRowView(r))
	}
	c.u.Set(0, int(start), 1)
	return c
}

// step advances the table by one plate appearance of the batter with
// family f: next[min(r+j, MaxRuns)] += u[r] · P[j].
func (c *chain) step(f *TransitionFamily) {
	c.next.Zero()
	for r := 0; r < NumRunBuckets; r++ {
		src := c.uRows[r]
		if floats.Sum(src.RawVector().Data) == 0 {
			continue
		}
		for j, p := range f.P {
			c.tmp.MulVec(p.T(), src)
			dst := c.nextRows[min(r+j, MaxRuns)]
			dst.AddVec(dst, c.tmp)
		}
	}
	c.u, c.next = c.next, c.u
	c.uRows, c.nextRows = c.nextRows, c.uRows
}

// absorbed returns the mass in the absorbing state over all run rows.
func (c *chain) absorbed() float64 {
	return mat.Sum(c.u.ColView(int(AbsorbingState)))
}
