/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for the explore-me fuzzing demo. Provides
commands to run the fixed demonstration inputs, replay fuzzer corpus files
through the panic-catching harness, and write the seed corpus to disk.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/explore-me/cmd/explore/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Harness configuration
	findingsDir string
	corpusDir   string
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "explore",
		Short: "explore-me - A branch-depth demonstration target for coverage-guided fuzzing",
		Long: `explore-me is a deliberately small fuzzing teaching target: a single function
with nested conditional branches and a crash hidden at maximum depth. It shows how a
program is structured for coverage-guided fuzz testing, how a harness catches and
records the crash, and how fuzzer corpus files are replayed against the target.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))

	// Add run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the target with the five fixed demonstration inputs",
		Long: `Run the target function with the five fixed inputs of the original program.
None of them reaches the crash branch, so the process exits normally. Panics are NOT
recovered here: an input reaching branch 4 aborts the process.`,
		RunE: commands.RunDemo,
	}

	// Add replay command
	replayCmd := &cobra.Command{
		Use:   "replay <file>...",
		Short: "Replay fuzzer corpus files through the panic-catching harness",
		Long: `Replay raw corpus files (as produced by a fuzzing engine or the seed command)
through the harness. Each file is decoded into the target's arguments, executed with
panic recovery, and any crash is recorded as a JSON finding. Exits non-zero if any
replayed input crashed the target.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commands.RunReplay,
	}
	replayCmd.Flags().StringVar(&findingsDir, "findings", "./findings", "Directory for crash findings")
	viper.BindPFlag("findings_dir", replayCmd.Flags().Lookup("findings"))

	// Add seed command
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the seed corpus for an external fuzzer",
		Long: `Write the five fixed demonstration inputs as raw corpus files an external
fuzzing engine can start from. Files use the harness wire format: two little-endian
uint32 values followed by the string argument.`,
		RunE: commands.RunSeed,
	}
	seedCmd.Flags().StringVar(&corpusDir, "corpus", "./corpus", "Directory for seed corpus files")
	viper.BindPFlag("corpus_dir", seedCmd.Flags().Lookup("corpus"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(seedCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
