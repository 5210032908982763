package sim_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/lineup-sim/sim"
	"github.com/inference-sim/lineup-sim/sim/internal/testutil"
)

// trialsPerSearch is 9·8 + 7·6 + 5·4 + 3·2 ordered slot pairs.
const trialsPerSearch = 140

func TestOptimizeLineup_DominantBatter_LeadsOffBestAndBatsLastInWorst(t *testing.T) {
	if testing.Short() {
		t.Skip("lineup search runs 280 chains")
	}
	// GIVEN one dominant hitter among eight average ones
	team := make([]sim.Profile, 0, sim.LineupSize)
	for i := 0; i < sim.LineupSize-1; i++ {
		team = append(team, testutil.ReferenceBatter(t, "avg"))
	}
	star := testutil.MustProfile(t, "star", 650, 110, 45, 5, 50, 110, 1.150)
	team = append(team, star)
	isStar := func(p sim.Profile) bool { return p.Name == "star" }

	// WHEN the maximizing search runs
	best, err := sim.OptimizeLineup(team, sim.Maximize, sim.DefaultOptimizerConfig())
	require.NoError(t, err)

	// THEN the star leads off, the slot with the most plate appearances
	assert.Equal(t, 0, slices.IndexFunc(best.Lineup, isStar))
	assert.Equal(t, trialsPerSearch, best.Trials)

	// AND the lineup beats batting the star ninth
	last := make(sim.Lineup, 0, sim.LineupSize)
	for _, p := range best.Lineup {
		if !isStar(p) {
			last = append(last, p)
		}
	}
	last = append(last, star)
	lastRes, err := sim.Simulate(last, sim.DefaultChainConfig())
	require.NoError(t, err)
	assert.Greater(t, best.Result.ExpectedRuns(), lastRes.ExpectedRuns())

	// WHEN the minimizing search runs
	worst, err := sim.OptimizeLineup(team, sim.Minimize, sim.DefaultOptimizerConfig())
	require.NoError(t, err)

	// THEN the star bats ninth
	assert.Equal(t, sim.LineupSize-1, slices.IndexFunc(worst.Lineup, isStar))
	assert.Greater(t, best.Result.ExpectedRuns(), worst.Result.ExpectedRuns())
}

// TestOptimizeLineup_RoundsScoreTrialsAgainstAverageBatters replays the first
// two rounds by hand. Every trial holds the team-average batter in all slots
// but the two being tried, including the slots committed in round one, and
// the first strictly best trial wins.
func TestOptimizeLineup_RoundsScoreTrialsAgainstAverageBatters(t *testing.T) {
	if testing.Short() {
		t.Skip("replays 114 trial chains and a full search")
	}
	// GIVEN a mixed team ranked by OPS the way the search ranks it
	team := testutil.MixedTeam(t)
	ranked := slices.Clone(team)
	slices.SortStableFunc(ranked, func(a, b sim.Profile) int { return cmp.Compare(a.OPS, b.OPS) })
	average, err := sim.NewTransitionFamily(sim.AverageRates(ranked))
	require.NoError(t, err)

	bestPair := func(low, high sim.Profile, open []int) (int, int) {
		lowFamily, err := sim.BuildTransitionFamily(low)
		require.NoError(t, err)
		highFamily, err := sim.BuildTransitionFamily(high)
		require.NoError(t, err)

		bestP, bestQ, bestRuns := -1, -1, 0.0
		for _, p := range open {
			for _, q := range open {
				if p == q {
					continue
				}
				slots := make([]*sim.TransitionFamily, sim.LineupSize)
				for i := range slots {
					slots[i] = average
				}
				slots[p], slots[q] = lowFamily, highFamily
				res, err := sim.SimulateFamilies(slots, sim.DefaultChainConfig())
				require.NoError(t, err)
				if bestP < 0 || res.ExpectedRuns() > bestRuns {
					bestP, bestQ, bestRuns = p, q, res.ExpectedRuns()
				}
			}
		}
		return bestP, bestQ
	}

	// WHEN the first two rounds are enumerated by hand
	open := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	p1, q1 := bestPair(ranked[0], ranked[8], open)
	open = slices.DeleteFunc(open, func(s int) bool { return s == p1 || s == q1 })
	p2, q2 := bestPair(ranked[1], ranked[7], open)

	// AND the search runs
	opt, err := sim.OptimizeLineup(team, sim.Maximize, sim.DefaultOptimizerConfig())
	require.NoError(t, err)

	// THEN it committed the same placements
	assert.Equal(t, ranked[0].Name, opt.Lineup[p1].Name)
	assert.Equal(t, ranked[8].Name, opt.Lineup[q1].Name)
	assert.Equal(t, ranked[1].Name, opt.Lineup[p2].Name)
	assert.Equal(t, ranked[7].Name, opt.Lineup[q2].Name)
}

func TestOptimizeLineup_BestBeatsWorst(t *testing.T) {
	if testing.Short() {
		t.Skip("lineup search runs 280 chains")
	}
	team := testutil.MixedTeam(t)

	best, err := sim.OptimizeLineup(team, sim.Maximize, sim.DefaultOptimizerConfig())
	require.NoError(t, err)
	worst, err := sim.OptimizeLineup(team, sim.Minimize, sim.DefaultOptimizerConfig())
	require.NoError(t, err)

	assert.Greater(t, best.Result.ExpectedRuns(), worst.Result.ExpectedRuns())
	assert.True(t, best.Result.Converged)
	assert.True(t, worst.Result.Converged)

	// Each search is a permutation of the team.
	for _, opt := range []*sim.Optimization{best, worst} {
		require.Len(t, opt.Lineup, sim.LineupSize)
		assert.ElementsMatch(t, team, []sim.Profile(opt.Lineup))
	}
}

func TestOptimizeLineup_WorkerCountDoesNotChangeResult(t *testing.T) {
	if testing.Short() {
		t.Skip("lineup search runs 280 chains")
	}
	team := testutil.MixedTeam(t)

	serial := sim.DefaultOptimizerConfig()
	serial.Workers = 1
	a, err := sim.OptimizeLineup(team, sim.Maximize, serial)
	require.NoError(t, err)

	parallel := sim.DefaultOptimizerConfig()
	parallel.Workers = 8
	b, err := sim.OptimizeLineup(team, sim.Maximize, parallel)
	require.NoError(t, err)

	assert.Equal(t, a.Lineup, b.Lineup)
	assert.Equal(t, a.Result.Distribution, b.Result.Distribution)
}

func TestOptimizeLineup_Errors(t *testing.T) {
	team := testutil.MixedTeam(t)

	_, err := sim.OptimizeLineup(team[:7], sim.Maximize, sim.DefaultOptimizerConfig())
	assert.ErrorIs(t, err, sim.ErrLineupSize)

	_, err = sim.OptimizeLineup(team, sim.Direction(5), sim.DefaultOptimizerConfig())
	assert.ErrorIs(t, err, sim.ErrInvalidDirection)

	cfg := sim.DefaultOptimizerConfig()
	cfg.Chain.StartBatter = 11
	_, err = sim.OptimizeLineup(team, sim.Maximize, cfg)
	assert.ErrorIs(t, err, sim.ErrInvalidBatterIndex)

	bad := slices.Clone(team)
	bad[3].PA = 0
	_, err = sim.OptimizeLineup(bad, sim.Maximize, sim.DefaultOptimizerConfig())
	assert.ErrorIs(t, err, sim.ErrMalformedProfile)
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]sim.Direction{"max": sim.Maximize, "best": sim.Maximize, "minimize": sim.Minimize, "worst": sim.Minimize} {
		got, err := sim.ParseDirection(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := sim.ParseDirection("sideways")
	assert.ErrorIs(t, err, sim.ErrInvalidDirection)
}
