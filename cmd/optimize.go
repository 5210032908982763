package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/lineup-sim/sim"
)

var (
	optimizeTeamPath  string // Roster CSV
	optimizeDirection string // max, min or both
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Search for the highest- or lowest-scoring batting order",
	Long: "Greedy best/worst pairing search over batting orders. Each round places the next best and " +
		"worst remaining batters in the slot pair that most changes expected runs, with average batters elsewhere.",
	Run: func(cmd *cobra.Command, args []string) {
		team := mustLoadTeam(optimizeTeamPath)

		var dirs []sim.Direction
		if optimizeDirection == "both" {
			dirs = []sim.Direction{sim.Maximize, sim.Minimize}
		} else {
			dir, err := sim.ParseDirection(optimizeDirection)
			if err != nil {
				logrus.Fatalf("Invalid --direction: %v", err)
			}
			dirs = []sim.Direction{dir}
		}

		printLineup(os.Stdout, team.Name+" by OPS", team.Ranked())
		printAverage(os.Stdout, team.Average())

		expected := make(map[sim.Direction]float64, len(dirs))
		for _, dir := range dirs {
			opt := mustOptimize(team, dir)
			printLineup(os.Stdout, fmt.Sprintf("%s: %s lineup", team.Name, dir), opt.Lineup)
			fmt.Printf("Expected runs          : %.4f\n", opt.Result.ExpectedRuns())
			fmt.Printf("Chains simulated       : %d\n", opt.Trials+1)
			if err := opt.Result.Err(); err != nil {
				fmt.Printf("WARNING: %v\n", err)
			}
			expected[dir] = opt.Result.ExpectedRuns()
		}
		if len(dirs) == 2 {
			fmt.Printf("Best minus worst       : %.4f runs\n", expected[sim.Maximize]-expected[sim.Minimize])
		}
	},
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeTeamPath, "team", "", "Path to the team roster CSV")
	optimizeCmd.Flags().StringVar(&optimizeDirection, "direction", "max", "Search direction: max, min or both")
	_ = optimizeCmd.MarkFlagRequired("team")

	rootCmd.AddCommand(optimizeCmd)
}
