package cmd

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/lineup-sim/sim"
	"github.com/inference-sim/lineup-sim/sim/roster"
)

var (
	logLevel            string  // Log verbosity level
	maxIterations       int     // Plate appearances before a chain gives up
	absorptionThreshold float64 // Absorbed mass at which a chain stops
	workers             int     // Concurrent chains during lineup search
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lineup-sim",
	Short: "Markov-chain run estimator and batting order optimizer",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// chainConfig builds the chain settings from the persistent flags.
func chainConfig() sim.ChainConfig {
	cfg := sim.DefaultChainConfig()
	cfg.MaxIterations = maxIterations
	cfg.AbsorptionThreshold = absorptionThreshold
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid chain settings: %v", err)
	}
	return cfg
}

func optimizerConfig() sim.OptimizerConfig {
	return sim.OptimizerConfig{Workers: workers, Chain: chainConfig()}
}

func mustLoadTeam(path string) *roster.Team {
	if path == "" {
		logrus.Fatalf("Roster path not provided.")
	}
	team, err := roster.LoadTeam(path)
	if err != nil {
		logrus.Fatalf("Failed to load roster %s: %v", path, err)
	}
	return team
}

func mustOptimize(team *roster.Team, dir sim.Direction) *sim.Optimization {
	logrus.Infof("Searching %s lineup for %s", dir, team.Name)
	opt, err := sim.OptimizeLineup(team.Batters, dir, optimizerConfig())
	if err != nil {
		logrus.Fatalf("Lineup search for %s failed: %v", team.Name, err)
	}
	return opt
}

// init sets up persistent flags
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVar(&maxIterations, "max-iterations", sim.DefaultMaxIterations, "Plate appearances simulated before a chain gives up")
	rootCmd.PersistentFlags().Float64Var(&absorptionThreshold, "absorption-threshold", sim.DefaultAbsorptionThreshold, "Probability of the game having ended at which a chain stops")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", runtime.NumCPU(), "Concurrent chain simulations during lineup search")
}
