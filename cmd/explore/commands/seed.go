/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: seed.go
Description: Seed command implementation for the explore-me demo. Writes the
fixed demonstration inputs as raw corpus files in the harness wire format so
an external fuzzing engine has a starting corpus.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/explore-me/pkg/harness"
)

// RunSeed writes the seed corpus to disk
func RunSeed(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 explore-me - Seed Corpus")
	fmt.Println("===========================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	corpusDir := viper.GetString("corpus_dir")
	if err := os.MkdirAll(corpusDir, 0755); err != nil {
		return fmt.Errorf("failed to create corpus directory: %w", err)
	}

	for i, inv := range seedInvocations {
		path := filepath.Join(corpusDir, fmt.Sprintf("seed_%03d", i))
		if err := os.WriteFile(path, harness.EncodeInvocation(inv), 0644); err != nil {
			return fmt.Errorf("failed to write seed file %s: %w", path, err)
		}
		fmt.Printf("📝 %s: a=%d b=%d c=%q\n", path, inv.A, inv.B, inv.C)
	}

	fmt.Printf("\n✨ Wrote %d seed file(s) to %s\n", len(seedInvocations), corpusDir)
	return nil
}
