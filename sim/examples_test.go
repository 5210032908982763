package sim_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/lineup-sim/sim"
	"github.com/inference-sim/lineup-sim/sim/roster"
)

// TestExampleLeague_ExpectedRunsNearObserved simulates every team in the
// shipped example league in roster order and checks the model lands in a
// realistic band around each team's observed scoring.
func TestExampleLeague_ExpectedRunsNearObserved(t *testing.T) {
	// GIVEN the example league config
	league, err := roster.LoadLeague(filepath.Join("..", "examples", "league.yaml"))
	require.NoError(t, err)

	for _, entry := range league.Teams {
		t.Run(entry.Name, func(t *testing.T) {
			team, err := league.LoadTeam(entry)
			require.NoError(t, err)

			// WHEN the roster-order lineup is simulated
			res, err := sim.Simulate(team.Batters, sim.DefaultChainConfig())
			require.NoError(t, err)

			// THEN the chain converges to a full game
			assert.True(t, res.Converged)
			assert.NoError(t, res.Err())

			// AND expected runs are within two runs of the observed rate
			assert.InDelta(t, entry.RunsPerGame, res.ExpectedRuns(), 2.0)
		})
	}
}
