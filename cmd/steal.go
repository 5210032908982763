package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/lineup-sim/sim"
)

var (
	stealTeamPath    string  // Roster CSV
	stealOptimize    bool    // Use the optimized order instead of roster order
	stealBatterUp    int     // Lineup slot at the plate, 1..9
	stealInning      int     // Inning, 1..9
	stealOuts        int     // Outs, 0..2
	stealOnFirst     bool    // Runner on first
	stealOnSecond    bool    // Runner on second
	stealOnThird     bool    // Runner on third
	stealBase        string  // Base the runner steals from
	stealSuccessRate float64 // Runner's success probability, used only when set
)

var stealCmd = &cobra.Command{
	Use:   "steal",
	Short: "Value a stolen-base attempt from a game state",
	Run: func(cmd *cobra.Command, args []string) {
		team := mustLoadTeam(stealTeamPath)
		lineup := team.Batters
		if stealOptimize {
			lineup = mustOptimize(team, sim.Maximize).Lineup
		}

		base, err := sim.ParseBase(stealBase)
		if err != nil {
			logrus.Fatalf("Invalid --base: %v", err)
		}
		successRate, err := successRateFlag(cmd.Flags().Changed("success-rate"), stealSuccessRate)
		if err != nil {
			logrus.Fatalf("Invalid --success-rate: %v", err)
		}
		before := sim.State{
			First:  stealOnFirst,
			Second: stealOnSecond,
			Third:  stealOnThird,
			Outs:   stealOuts,
			Inning: stealInning,
		}
		if !before.Valid() || before.Terminal() {
			logrus.Fatalf("Invalid game state: inning %d, %d outs", stealInning, stealOuts)
		}

		v, err := sim.EvaluateSteal(lineup, stealBatterUp-1, before, base)
		if err != nil {
			logrus.Fatalf("Steal evaluation failed: %v", err)
		}
		printLineup(os.Stdout, team.Name, lineup)
		printSteal(os.Stdout, before, base, v, successRate)
	},
}

// successRateFlag returns nil when --success-rate was not given, and the rate
// when it was and lies in [0, 1].
func successRateFlag(changed bool, rate float64) (*float64, error) {
	if !changed {
		return nil, nil
	}
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return nil, fmt.Errorf("must be in [0, 1], got %v", rate)
	}
	return &rate, nil
}

func init() {
	stealCmd.Flags().StringVar(&stealTeamPath, "team", "", "Path to the team roster CSV")
	stealCmd.Flags().BoolVar(&stealOptimize, "optimize", false, "Use the optimized batting order")
	stealCmd.Flags().IntVar(&stealBatterUp, "batter-up", 1, "Lineup slot at the plate (1-9)")
	stealCmd.Flags().IntVar(&stealInning, "inning", 9, "Inning (1-9)")
	stealCmd.Flags().IntVar(&stealOuts, "outs", 0, "Outs (0-2)")
	stealCmd.Flags().BoolVar(&stealOnFirst, "on-first", false, "Runner on first")
	stealCmd.Flags().BoolVar(&stealOnSecond, "on-second", false, "Runner on second")
	stealCmd.Flags().BoolVar(&stealOnThird, "on-third", false, "Runner on third")
	stealCmd.Flags().StringVar(&stealBase, "base", "first", "Base the runner steals from (first, second, third)")
	stealCmd.Flags().Float64Var(&stealSuccessRate, "success-rate", 0, "Runner's steal success probability in [0, 1] (omit to skip the attempt value)")
	_ = stealCmd.MarkFlagRequired("team")

	rootCmd.AddCommand(stealCmd)
}
