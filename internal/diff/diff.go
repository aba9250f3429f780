// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package diff renders what stripping would change in a notebook. Check mode
// uses it with --diff so a failing CI run shows the offending outputs instead
// of just naming the file.
package diff

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Preview writes an ASCII JSON diff of before vs. after to w. Identical
// documents produce no output.
func Preview(w io.Writer, before, after []byte, color bool) error {
	differ := gojsondiff.New()

	delta, err := differ.Compare(before, after)
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(before, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal document: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       color,
	}

	f := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := f.Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}
