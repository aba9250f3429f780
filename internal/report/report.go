// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/nbstrip/nbstrip/internal/config"
)

// Result is the verdict for a single scanned notebook.
type Result struct {
	Source     string `json:"source" yaml:"source"`
	HasOutputs bool   `json:"has_outputs" yaml:"has_outputs"`
}

// Summary aggregates a check-mode run for machine consumption (--report).
// Size is the humanized form of Bytes, for the humans reading CI logs.
type Summary struct {
	Scanned int      `json:"scanned" yaml:"scanned"`
	Failed  int      `json:"failed" yaml:"failed"`
	Skipped int      `json:"skipped" yaml:"skipped"`
	Bytes   uint64   `json:"bytes" yaml:"bytes"`
	Size    string   `json:"size" yaml:"size"`
	Results []Result `json:"results" yaml:"results"`
}

// Add records a verdict and the size of the scanned document.
func (s *Summary) Add(source string, hasOutputs bool, size int) {
	s.Scanned++
	if hasOutputs {
		s.Failed++
	}
	s.Bytes += uint64(size)
	s.Size = humanize.Bytes(s.Bytes)
	s.Results = append(s.Results, Result{Source: source, HasOutputs: hasOutputs})
}

// Write emits the summary to w in the requested format ("json" or "yaml").
func (s *Summary) Write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", " ")
		return enc.Encode(s)
	case "yaml":
		data, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// failStyle colors check failures when color output is requested. The color
// can be overridden via the colors.fail config key.
var failStyle = func() lipgloss.Style {
	c, err := config.GetString("colors.fail")
	if err != nil {
		c = "#ff5f56"
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
}()

// Fail prints the per-file check failure line. The line format is part of the
// external contract; pre-commit and CI logs grep for it.
func Fail(w io.Writer, source string, color bool) {
	line := fmt.Sprintf("FAIL: %s contains outputs", source)
	if color {
		line = failStyle.Render(line)
	}
	fmt.Fprintln(w, line)
}
