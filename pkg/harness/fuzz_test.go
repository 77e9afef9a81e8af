/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fuzz_test.go
Description: Native Go fuzz test for the explore-me target. Feeds arbitrary
byte buffers through the data provider and harness, and checks that the target
crashes exactly when all four branch conditions hold.
*/

package harness_test

import (
	"testing"

	"github.com/kleascm/explore-me/pkg/harness"
	"github.com/kleascm/explore-me/pkg/target"
)

// FuzzExploreMe drives the target with arbitrary buffers. Seeded with the
// fixed demonstration inputs plus the known crashing input, so the crash
// branch is exercised on every run even before the engine mutates anything.
func FuzzExploreMe(f *testing.F) {
	seeds := []harness.Invocation{
		{A: 1, B: 1, C: "A"},
		{A: 2147483647, B: 2147483647, C: "A"},
		{A: 2000000000, B: 2000000123, C: "FUZZING"},
		{A: 2000000000, B: 3000000000, C: "A"},
		{A: 397652, B: 3082562284, C: "FUZZING"},
	}
	for _, inv := range seeds {
		f.Add(harness.EncodeInvocation(inv))
	}

	h := quietHarness()

	f.Fuzz(func(t *testing.T, data []byte) {
		inv := harness.DecodeInvocation(data)
		finding := h.Run(inv)

		// Crash iff every gate is open: a past the default path, b past the
		// branch-2 gate, b ahead of a by more than 100000, and the magic string.
		wantCrash := inv.A >= 20000 &&
			inv.B >= 2000000 &&
			inv.B > inv.A && inv.B-inv.A > 100000 &&
			inv.C == "FUZZING"

		if wantCrash {
			if finding == nil {
				t.Fatalf("expected a crash for a=%d b=%d c=%q, got none", inv.A, inv.B, inv.C)
			}
			if finding.Message != target.CrashMessage {
				t.Fatalf("unexpected crash message: %q", finding.Message)
			}
		} else if finding != nil {
			t.Fatalf("unexpected crash for a=%d b=%d c=%q: %s", inv.A, inv.B, inv.C, finding.Message)
		}
	})
}
