/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run.go
Description: Run command implementation for the explore-me demo. Executes the
target with the five fixed demonstration inputs without panic recovery, so a
crash-branch input genuinely aborts the process.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleascm/explore-me/pkg/harness"
	"github.com/kleascm/explore-me/pkg/target"
)

// seedInvocations are the five fixed inputs of the original demonstration
// program. None of them satisfies all four branch conditions: the last two
// pass the first two gates but have b-a = 123, short of the branch-3
// threshold of 100000.
var seedInvocations = []harness.Invocation{
	{A: 1, B: 1, C: "A"},
	{A: 2147483647, B: 1, C: "A"},
	{A: 2147483647, B: 2147483647, C: "A"},
	{A: 2000000000, B: 2000000123, C: "A"},
	{A: 2000000000, B: 2000000123, C: "FUZZING"},
}

// RunDemo executes the five fixed demonstration inputs
func RunDemo(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 explore-me - Branch Exploration Demo")
	fmt.Println("=======================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// No recovery here: reaching branch 4 must abort the process
	for _, inv := range seedInvocations {
		target.ExploreMe(inv.A, inv.B, inv.C)
	}

	fmt.Println("\n✨ All demonstration inputs completed without reaching branch 4!")
	return nil
}
