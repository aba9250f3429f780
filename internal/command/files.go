// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nbstrip/nbstrip/internal/notebook"
)

// qualifyingFiles partitions positional arguments into notebook paths and a
// count of skipped ones. Non-notebook arguments are passed over silently and
// never affect the exit status; the hook hands us every staged file and only
// notebooks are ours to touch.
func qualifyingFiles(args []string, exts []string) (files []string, skipped int) {
	for _, arg := range args {
		if qualifies(arg, exts) {
			files = append(files, arg)
		} else {
			skipped++
		}
	}
	return files, skipped
}

func qualifies(path string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// stripBytes decodes data, strips it, and returns the canonical encoded form.
func stripBytes(data []byte, source string, extraKeys []string) ([]byte, error) {
	doc, err := notebook.Decode(bytes.NewReader(data), source)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := notebook.Encode(&buf, notebook.Strip(doc, extraKeys...)); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", source, err)
	}
	return buf.Bytes(), nil
}

// stripFile reads, strips, and rewrites path in place, keeping the file's
// mode. Returns the byte sizes before and after.
func stripFile(path string, extraKeys []string) (before, after int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	stripped, err := stripBytes(data, path, extraKeys)
	if err != nil {
		return 0, 0, err
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(path, stripped, mode); err != nil {
		return 0, 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return len(data), len(stripped), nil
}
