package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/lineup-sim/sim"
)

var (
	runTeamPath string // Roster CSV
	runOptimize bool   // Search for the best order before simulating
)

// runCmd computes the run distribution of a team's lineup
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the expected run distribution of a lineup",
	Run: func(cmd *cobra.Command, args []string) {
		team := mustLoadTeam(runTeamPath)

		lineup := team.Batters
		title := "Lineup (roster order)"
		if runOptimize {
			lineup = mustOptimize(team, sim.Maximize).Lineup
			title = "Lineup (optimized)"
		}

		res, err := sim.Simulate(lineup, chainConfig())
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		printLineup(os.Stdout, title, lineup)
		printDistribution(os.Stdout, res)
		logrus.Info("Simulation complete.")
	},
}

func init() {
	runCmd.Flags().StringVar(&runTeamPath, "team", "", "Path to the team roster CSV")
	runCmd.Flags().BoolVar(&runOptimize, "optimize", false, "Search for the highest-scoring order before simulating")
	_ = runCmd.MarkFlagRequired("team")

	rootCmd.AddCommand(runCmd)
}
