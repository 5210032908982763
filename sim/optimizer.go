// sim/optimizer.go
package sim

import (
	"fmt"
	"runtime"
	"slices"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Direction selects whether the optimizer looks for the highest- or the
// lowest-scoring batting order.
type Direction int

const (
	Maximize Direction = iota
	Minimize
)

// ParseDirection accepts "max"/"maximize"/"best" and "min"/"minimize"/"worst".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "max", "maximize", "best":
		return Maximize, nil
	case "min", "minimize", "worst":
		return Minimize, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) String() string {
	switch d {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// better reports whether a strictly beats b. Ties keep the earlier trial.
func (d Direction) better(a, b float64) bool {
	if d == Minimize {
		return a < b
	}
	return a > b
}

// OptimizerConfig tunes the lineup search.
type OptimizerConfig struct {
	Workers int         // concurrent trial simulations; <= 0 means runtime.NumCPU()
	Chain   ChainConfig // chain settings for every trial and for the final lineup
}

// DefaultOptimizerConfig uses every CPU and full-game chains.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{Workers: runtime.NumCPU(), Chain: DefaultChainConfig()}
}

// Optimization is the lineup the search settled on.
type Optimization struct {
	Lineup Lineup  // batting order, slot 1 first
	Result *Result // chain result for Lineup
	Trials int     // chain simulations run by the search
}

// placement is one trial: the low-ranked batter of the round in slot low,
// the high-ranked one in slot high.
type placement struct {
	low, high int
}

// OptimizeLineup searches for a batting order with the highest (Maximize) or
// lowest (Minimize) expected runs.
//
// The search is greedy. Batters are ranked by OPS, ascending. Round k pairs
// rank k with rank 8-k and tries them in every ordered pair of open slots,
// with the team-average batter in the other seven slots, including slots
// committed in earlier rounds. The best pair placement is committed and its
// slots closed. After four rounds the
// median batter takes the last open slot. This runs far fewer chains than
// the 9! orders and does not guarantee the optimum.
func OptimizeLineup(batters []Profile, dir Direction, cfg OptimizerConfig) (*Optimization, error) {
	if len(batters) != LineupSize {
		return nil, fmt.Errorf("%w, got %d", ErrLineupSize, len(batters))
	}
	if dir != Maximize && dir != Minimize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if err := cfg.Chain.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ranked := Lineup(slices.Clone(batters))
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].OPS < ranked[j].OPS })
	families, err := ranked.Families()
	if err != nil {
		return nil, err
	}
	average, err := NewTransitionFamily(AverageRates(ranked))
	if err != nil {
		return nil, fmt.Errorf("team average: %w", err)
	}

	open := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	lineup := make(Lineup, LineupSize)
	trials := 0
	for round := 0; round < LineupSize/2; round++ {
		low, high := round, LineupSize-1-round

		var candidates []placement
		for _, p := range open {
			for _, q := range open {
				if p != q {
					candidates = append(candidates, placement{low: p, high: q})
				}
			}
		}

		scores := make([]float64, len(candidates))
		var g errgroup.Group
		g.SetLimit(workers)
		for k, c := range candidates {
			g.Go(func() error {
				slots := make([]*TransitionFamily, LineupSize)
				for i := range slots {
					slots[i] = average
				}
				slots[c.low] = families[low]
				slots[c.high] = families[high]
				res, err := SimulateFamilies(slots, cfg.Chain)
				if err != nil {
					return err
				}
				scores[k] = res.ExpectedRuns()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}
		trials += len(candidates)

		best := 0
		for k := 1; k < len(scores); k++ {
			if dir.better(scores[k], scores[best]) {
				best = k
			}
		}
		chosen := candidates[best]
		lineup[chosen.low] = ranked[low]
		lineup[chosen.high] = ranked[high]
		open = slices.DeleteFunc(open, func(slot int) bool { return slot == chosen.low || slot == chosen.high })

		logrus.Infof("[%s] round %d: %s -> slot %d, %s -> slot %d (%.4f expected runs over %d trials)",
			dir, round+1, ranked[low].label(), chosen.low+1, ranked[high].label(), chosen.high+1,
			scores[best], len(candidates))
	}
	lineup[open[0]] = ranked[LineupSize/2]

	res, err := Simulate(lineup, cfg.Chain)
	if err != nil {
		return nil, err
	}
	return &Optimization{Lineup: lineup, Result: res, Trials: trials}, nil
}
