package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/lineup-sim/sim"
)

var (
	gameHomePath string // Home roster CSV
	gameAwayPath string // Away roster CSV
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Win probability of two teams with their optimized lineups",
	Run: func(cmd *cobra.Command, args []string) {
		home := mustLoadTeam(gameHomePath)
		away := mustLoadTeam(gameAwayPath)

		homeOpt := mustOptimize(home, sim.Maximize)
		awayOpt := mustOptimize(away, sim.Maximize)
		for _, opt := range []*sim.Optimization{homeOpt, awayOpt} {
			if err := opt.Result.Err(); err != nil {
				logrus.Warnf("Win probability uses a partial distribution: %v", err)
			}
		}

		odds := sim.Matchup(homeOpt.Result.Distribution, awayOpt.Result.Distribution)
		printLineup(os.Stdout, home.Name, homeOpt.Lineup)
		printLineup(os.Stdout, away.Name, awayOpt.Lineup)
		printMatchup(os.Stdout, home.Name, away.Name, homeOpt.Result.ExpectedRuns(), awayOpt.Result.ExpectedRuns(), odds)
	},
}

func init() {
	gameCmd.Flags().StringVar(&gameHomePath, "home", "", "Path to the home team roster CSV")
	gameCmd.Flags().StringVar(&gameAwayPath, "away", "", "Path to the away team roster CSV")
	_ = gameCmd.MarkFlagRequired("home")
	_ = gameCmd.MarkFlagRequired("away")

	rootCmd.AddCommand(gameCmd)
}
