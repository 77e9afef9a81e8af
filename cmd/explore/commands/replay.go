/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: replay.go
Description: Replay command implementation for the explore-me demo. Decodes
raw corpus files, runs them through the panic-catching harness, and persists
any crash as a JSON finding for later reproduction.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/explore-me/pkg/harness"
)

// RunReplay replays corpus files through the harness
func RunReplay(cmd *cobra.Command, args []string) error {
	fmt.Println("🔄 explore-me - Corpus Replay")
	fmt.Println("=============================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	findingsDir := viper.GetString("findings_dir")
	h := harness.New(logger)

	crashes := 0
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read corpus file %s: %w", file, err)
		}

		finding := h.RunBytes(data)
		if finding == nil {
			fmt.Printf("✅ %s: completed normally\n", file)
			continue
		}

		crashes++
		path, err := harness.WriteFinding(findingsDir, finding)
		if err != nil {
			return fmt.Errorf("failed to persist finding for %s: %w", file, err)
		}
		fmt.Printf("💥 %s: %s (finding written to %s)\n", file, finding.Message, path)
	}

	fmt.Printf("\n📊 Replayed %d file(s), %d crash(es)\n", len(args), crashes)
	if crashes > 0 {
		return fmt.Errorf("%d of %d replayed input(s) crashed the target", crashes, len(args))
	}

	fmt.Println("✨ Replay completed without crashes!")
	return nil
}
