package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/inference-sim/lineup-sim/sim"
)

// printLineup writes a numbered batting order.
func printLineup(w io.Writer, title string, lineup sim.Lineup) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	for i, p := range lineup {
		fmt.Fprintf(w, "%d. %-24s OPS %.3f  PA %d\n", i+1, p.Name, p.OPS, p.PA)
	}
}

// printDistribution writes the run distribution of a chain result and its
// expected value. Non-converged results carry a warning line.
func printDistribution(w io.Writer, res *sim.Result) {
	fmt.Fprintln(w, "=== Run Distribution ===")
	for r, p := range res.Distribution {
		label := fmt.Sprintf("%d", r)
		if r == sim.MaxRuns {
			label += "+"
		}
		fmt.Fprintf(w, "%-4s: %.6f\n", label, p)
	}
	fmt.Fprintf(w, "Probability game ended : %.6f\n", res.Distribution.Total())
	fmt.Fprintf(w, "Plate appearances      : %d\n", res.Iterations)
	fmt.Fprintf(w, "Expected runs          : %.4f\n", res.ExpectedRuns())
	if err := res.Err(); err != nil {
		fmt.Fprintf(w, "WARNING: %v; figures above are partial\n", err)
	}
}

// printAverage writes the team-average batter the lineup search fills open
// slots with.
func printAverage(w io.Writer, avg sim.Rates) {
	fmt.Fprintln(w, "=== Team Average Batter ===")
	for o, rate := range avg {
		fmt.Fprintf(w, "%-9s: %.4f\n", sim.Outcome(o), rate)
	}
}

// printSteal writes the three branches of a steal attempt and its break-even
// rate. The attempt value line appears only when successRate is set.
func printSteal(w io.Writer, before sim.State, base sim.Base, v *sim.StealValue, successRate *float64) {
	fmt.Fprintf(w, "=== Steal of %s from %s ===\n", nextBaseName(base), before)
	fmt.Fprintf(w, "Expected runs without stealing  : %.4f\n", v.NoAttempt)
	fmt.Fprintf(w, "Expected runs after a steal     : %.4f\n", v.Success)
	fmt.Fprintf(w, "Expected runs after caught      : %.4f\n", v.Caught)
	if math.IsNaN(v.BreakEven) {
		fmt.Fprintln(w, "Break-even success rate         : n/a")
	} else {
		fmt.Fprintf(w, "Break-even success rate         : %.2f%%\n", 100*v.BreakEven)
	}
	if successRate != nil {
		fmt.Fprintf(w, "Attempt value at %5.1f%% success : %+.4f runs\n", 100*(*successRate), v.AttemptValue(*successRate))
	}
}

// nextBaseName names the base a runner on b is stealing.
func nextBaseName(b sim.Base) string {
	if b == sim.ThirdBase {
		return "home"
	}
	return (b + 1).String()
}

// printMatchup writes both teams' expected runs and the win and tie odds.
func printMatchup(w io.Writer, home, away string, homeRuns, awayRuns float64, odds sim.MatchupOdds) {
	fmt.Fprintf(w, "=== %s (home) vs %s (away) ===\n", home, away)
	fmt.Fprintf(w, "Expected runs %-12s: %.4f\n", home, homeRuns)
	fmt.Fprintf(w, "Expected runs %-12s: %.4f\n", away, awayRuns)
	fmt.Fprintf(w, "P(%s win)   : %.2f%%\n", home, 100*odds.HomeWin)
	fmt.Fprintf(w, "P(%s win)   : %.2f%%\n", away, 100*odds.AwayWin)
	fmt.Fprintf(w, "P(tie after 9)  : %.2f%%\n", 100*odds.Tie)
}
