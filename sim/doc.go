// Package sim provides the Markov-chain engine for lineup-sim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - state.go: the 217 game states (bases × outs × inning) and the six batting outcomes
//   - transition.go: per-batter transition matrix families, one matrix per runs-on-the-play
//   - chain.go: the run-layered chain iteration that produces a run distribution
//   - optimizer.go: the greedy best/worst pairing search over batting orders
//
// # Model
//
// A game is a walk through game states driven by the batter at the plate.
// Only the game state is Markov; the number of runs scored so far is carried
// alongside as an extra dimension of the probability table, capped at
// MaxRuns (the last bucket means "MaxRuns or more"). The walk ends in the
// absorbing state, three outs in the ninth.
//
// The iteration stops once the absorbing state holds AbsorptionThreshold of
// the mass or after MaxIterations plate appearances. The result is an
// approximation of the absorption distribution, not an exact one; callers
// check Result.Converged.
//
// # Sub-packages
//   - sim/roster: team CSV and league YAML loading
//   - sim/internal/testutil: shared test fixtures
package sim
