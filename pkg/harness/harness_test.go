/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: harness_test.go
Description: Unit tests for the panic-catching harness. Covers crash capture,
normal completion, raw-buffer execution, and JSON finding persistence. The
crash-capture test doubles as the fuzz-harness stand-in from the original
demonstration program.
*/

package harness_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/explore-me/pkg/harness"
	"github.com/kleascm/explore-me/pkg/target"
)

func quietHarness() *harness.Harness {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return harness.New(logger)
}

// TestHarnessCatchesBranch4Crash is the fuzz-harness stand-in: a fuzzing
// engine would supply adversarial inputs, here the known crashing input is
// fixed. The harness must observe the crash without dying.
func TestHarnessCatchesBranch4Crash(t *testing.T) {
	h := quietHarness()

	finding := h.Run(harness.Invocation{A: 397652, B: 3082562284, C: "FUZZING"})
	require.NotNil(t, finding)

	assert.Equal(t, target.CrashMessage, finding.Message)
	assert.Contains(t, finding.Output, "branch 4")
	assert.NotContains(t, finding.Output, "---------")
	assert.False(t, finding.At.IsZero())

	// Finding IDs are real UUIDs
	_, err := uuid.Parse(finding.ID)
	assert.NoError(t, err)
}

// TestHarnessNormalCompletion verifies non-crashing inputs produce no finding
func TestHarnessNormalCompletion(t *testing.T) {
	h := quietHarness()

	cases := []harness.Invocation{
		{A: 1, B: 1, C: "A"},
		{A: 2147483647, B: 1, C: "A"},
		{A: 2147483647, B: 2147483647, C: "A"},
		{A: 2000000000, B: 2000000123, C: "A"},
		{A: 2000000000, B: 2000000123, C: "FUZZING"},
	}
	for _, inv := range cases {
		assert.Nil(t, h.Run(inv))
	}
}

// TestRunBytes verifies the raw-buffer entry decodes and executes
func TestRunBytes(t *testing.T) {
	h := quietHarness()

	crash := harness.EncodeInvocation(harness.Invocation{A: 397652, B: 3082562284, C: "FUZZING"})
	finding := h.RunBytes(crash)
	require.NotNil(t, finding)
	assert.Equal(t, uint32(397652), finding.Invocation.A)
	assert.Equal(t, uint32(3082562284), finding.Invocation.B)
	assert.Equal(t, "FUZZING", finding.Invocation.C)

	// A short garbage buffer decodes to zero values and the default path
	assert.Nil(t, h.RunBytes([]byte{0x01}))
}

// TestWriteFinding verifies findings persist as readable JSON
func TestWriteFinding(t *testing.T) {
	h := quietHarness()
	finding := h.Run(harness.Invocation{A: 397652, B: 3082562284, C: "FUZZING"})
	require.NotNil(t, finding)

	dir := t.TempDir()
	path, err := harness.WriteFinding(dir, finding)
	require.NoError(t, err)
	assert.Contains(t, path, finding.ID)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded harness.Finding
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, finding.ID, loaded.ID)
	assert.Equal(t, finding.Invocation, loaded.Invocation)
	assert.Equal(t, finding.Message, loaded.Message)
}
