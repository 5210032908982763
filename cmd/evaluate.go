package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/lineup-sim/sim"
	"github.com/inference-sim/lineup-sim/sim/roster"
)

var (
	evaluateLeaguePath string // League YAML
	evaluateLineups    bool   // Also report the best/worst order spread per team
)

// evaluateCmd compares model-expected runs of each team's best lineup with its
// observed scoring
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compare expected runs with observed runs per game across a league",
	Run: func(cmd *cobra.Command, args []string) {
		if evaluateLeaguePath == "" {
			logrus.Fatalf("League config path not provided.")
		}
		league, err := roster.LoadLeague(evaluateLeaguePath)
		if err != nil {
			logrus.Fatalf("Failed to load league: %v", err)
		}

		var observed, expected []float64
		var totalSpread, maxSpread float64
		fmt.Println("=== Model vs Observed (best lineups) ===")
		for _, entry := range league.Teams {
			team, err := league.LoadTeam(entry)
			if err != nil {
				logrus.Fatalf("Failed to load team %s: %v", entry.Name, err)
			}
			best := mustOptimize(team, sim.Maximize)
			if err := best.Result.Err(); err != nil {
				logrus.Warnf("%s: %v", team.Name, err)
			}
			runs := best.Result.ExpectedRuns()
			observed = append(observed, entry.RunsPerGame)
			expected = append(expected, runs)
			fmt.Printf("%-24s expected %.3f  actual %.3f  error %+.3f\n", team.Name, runs, entry.RunsPerGame, entry.RunsPerGame-runs)

			if evaluateLineups {
				worst := mustOptimize(team, sim.Minimize)
				spread := runs - worst.Result.ExpectedRuns()
				totalSpread += spread
				maxSpread = math.Max(maxSpread, spread)
				fmt.Printf("%-24s best %.3f  worst %.3f  spread %.3f\n", "", runs, worst.Result.ExpectedRuns(), spread)
			}
		}

		signed, absolute := meanErrors(observed, expected)
		fmt.Printf("Mean error             : %+.4f runs/game (actual - expected)\n", signed)
		fmt.Printf("Mean absolute error    : %.4f runs/game\n", absolute)
		if evaluateLineups {
			n := float64(len(league.Teams))
			fmt.Printf("Mean lineup spread     : %.4f runs/game\n", totalSpread/n)
			fmt.Printf("Max lineup spread      : %.4f runs/game\n", maxSpread)
		}
	},
}

// meanErrors returns the mean of observed-expected and the mean of its
// absolute value. Over- and under-estimates cancel in the first.
func meanErrors(observed, expected []float64) (signed, absolute float64) {
	if len(observed) == 0 {
		return 0, 0
	}
	for i := range observed {
		diff := observed[i] - expected[i]
		signed += diff
		absolute += math.Abs(diff)
	}
	n := float64(len(observed))
	return signed / n, absolute / n
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateLeaguePath, "league", "", "Path to the league YAML config")
	evaluateCmd.Flags().BoolVar(&evaluateLineups, "lineups", false, "Also search the worst order for each team and report the spread")

	rootCmd.AddCommand(evaluateCmd)
}
