package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/lineup-sim/sim"
	"github.com/inference-sim/lineup-sim/sim/roster"
)

var (
	replaceTeamPath string // Roster CSV of the team being changed
	replacePlayerID string // Player leaving the team
	replaceFromPath string // Roster CSV the substitute is taken from
	replaceWithID   string // Player joining the team
)

// replaceCmd values a roster move by re-optimizing the lineup with the substitute
var replaceCmd = &cobra.Command{
	Use:   "replace",
	Short: "Expected runs gained or lost by swapping one batter for another",
	Run: func(cmd *cobra.Command, args []string) {
		team := mustLoadTeam(replaceTeamPath)
		source := mustLoadTeam(replaceFromPath)

		sub, ok := findBatter(source, replaceWithID)
		if !ok {
			logrus.Fatalf("Player %q not found in %s", replaceWithID, source.Name)
		}
		changed, err := team.Replace(replacePlayerID, sub)
		if err != nil {
			logrus.Fatalf("Roster move failed: %v", err)
		}

		before := mustOptimize(team, sim.Maximize)
		after := mustOptimize(changed, sim.Maximize)
		printLineup(os.Stdout, team.Name+" before", before.Lineup)
		printLineup(os.Stdout, team.Name+" after", after.Lineup)
		fmt.Printf("Expected runs before   : %.4f\n", before.Result.ExpectedRuns())
		fmt.Printf("Expected runs after    : %.4f\n", after.Result.ExpectedRuns())
		fmt.Printf("Change                 : %+.4f runs/game\n", after.Result.ExpectedRuns()-before.Result.ExpectedRuns())
	},
}

func findBatter(team *roster.Team, id string) (sim.Profile, bool) {
	for _, p := range team.Batters {
		if p.ID == id {
			return p, true
		}
	}
	return sim.Profile{}, false
}

func init() {
	replaceCmd.Flags().StringVar(&replaceTeamPath, "team", "", "Path to the roster CSV of the team making the move")
	replaceCmd.Flags().StringVar(&replacePlayerID, "player", "", "playerid of the batter leaving the lineup")
	replaceCmd.Flags().StringVar(&replaceFromPath, "from", "", "Path to the roster CSV holding the substitute")
	replaceCmd.Flags().StringVar(&replaceWithID, "with", "", "playerid of the substitute")
	for _, name := range []string{"team", "player", "from", "with"} {
		_ = replaceCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(replaceCmd)
}
