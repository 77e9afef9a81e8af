/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: harness.go
Description: Panic-catching execution harness for the explore-me target.
Runs one invocation at a time, captures target output and timing, converts
panics into structured findings, and persists findings as timestamped JSON
for later reproduction.
*/

package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/explore-me/pkg/target"
)

// Invocation is a single typed call to the target.
type Invocation struct {
	A uint32 `json:"a"` // First integer argument
	B uint32 `json:"b"` // Second integer argument
	C string `json:"c"` // String argument gating the crash branch
}

// Finding records one crashing invocation of the target.
// The ID is unique per finding so repeated reproductions of the same crash
// never overwrite each other.
type Finding struct {
	ID         string     `json:"id"`         // Unique finding identifier
	Invocation Invocation `json:"invocation"` // Inputs that triggered the crash
	Message    string     `json:"message"`    // Panic message from the target
	Output     string     `json:"output"`     // Target output up to the crash
	Duration   string     `json:"duration"`   // Wall time of the invocation
	At         time.Time  `json:"at"`         // When the crash was observed
}

// Harness drives the target one invocation at a time. Unlike the program
// entry point, the harness recovers panics: observing the crash without
// dying is the whole point of wrapping a target.
type Harness struct {
	logger *logrus.Logger
}

// New creates a harness reporting through the given logger.
func New(logger *logrus.Logger) *Harness {
	if logger == nil {
		logger = logrus.New()
	}
	return &Harness{logger: logger}
}

// Run executes one invocation of the target. It returns a Finding if the
// invocation panicked and nil if it completed normally.
func (h *Harness) Run(inv Invocation) (finding *Finding) {
	var out bytes.Buffer
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			finding = &Finding{
				ID:         uuid.NewString(),
				Invocation: inv,
				Message:    fmt.Sprintf("%v", r),
				Output:     out.String(),
				Duration:   time.Since(start).String(),
				At:         time.Now(),
			}
			h.logger.WithFields(logrus.Fields{
				"finding": finding.ID,
				"a":       inv.A,
				"b":       inv.B,
				"c":       inv.C,
			}).Warn("Crash detected")
		}
	}()

	target.Explore(&out, inv.A, inv.B, inv.C)

	h.logger.WithFields(logrus.Fields{
		"a": inv.A,
		"b": inv.B,
		"c": inv.C,
	}).Debug("Invocation completed")
	return nil
}

// RunBytes decodes a raw fuzz buffer and runs it. This is the entry an
// external fuzzing engine (or a replayed crash artifact) goes through.
func (h *Harness) RunBytes(data []byte) *Finding {
	return h.Run(DecodeInvocation(data))
}

// WriteFinding writes a finding to the findings directory with a timestamped
// filename and returns the path.
func WriteFinding(findingsDir string, f *Finding) (string, error) {
	if err := os.MkdirAll(findingsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create findings directory: %w", err)
	}

	// Filename: 2024-06-11_01-30-00_<id>.json
	timestamp := f.At.Format("2006-01-02_15-04-05")
	filePath := filepath.Join(findingsDir, fmt.Sprintf("%s_%s.json", timestamp, f.ID))

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal finding: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write finding file: %w", err)
	}
	return filePath, nil
}
