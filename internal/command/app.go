// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/nbstrip/nbstrip/internal/config"
	"github.com/nbstrip/nbstrip/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// A missing config file is fine; the tool needs no configuration to do
	// its job.
	cfg, _ := config.Load() //nolint

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:      "nbstrip",
		Usage:     "strip Jupyter notebook outputs before they reach version control",
		ArgsUsage: "[file.ipynb ...]",
		Flags:     NewFlags(),
		Action:    runAction,
		Metadata:  map[string]any{"meta": m},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
