// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/nbstrip/nbstrip/internal/meta"
)

// ErrCheckFailed signals that check mode found outputs. It is a designed
// negative result, not a fault: the per-file diagnostics have already been
// written by the time it is returned, and main maps it to exit status 1.
var ErrCheckFailed = errors.New("notebook outputs detected")

// GetMeta returns the Meta from the command's metadata.
func GetMeta(cmd *cli.Command) meta.Meta {
	return cmd.Metadata["meta"].(meta.Meta)
}

// useColor reports whether diagnostics should be styled. Piped stderr (CI
// logs) always stays plain.
func useColor(cmd *cli.Command) bool {
	return cmd.Bool("color") && term.IsTerminal(int(os.Stderr.Fd()))
}
