// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	awsx "github.com/nbstrip/nbstrip/internal/aws"
	"github.com/nbstrip/nbstrip/internal/config"
	"github.com/nbstrip/nbstrip/internal/notebook"
	"github.com/nbstrip/nbstrip/internal/report"
	"github.com/nbstrip/nbstrip/internal/s3scan"
)

// runS3Check builds an S3 client from the ambient AWS setup (with optional
// profile/region overrides) and checks every notebook under the prefix.
func runS3Check(ctx context.Context, cmd *cli.Command, uri string) error {
	var cfgOpts []awsx.Option
	if profile := cmd.String("profile"); profile != "" {
		cfgOpts = append(cfgOpts, awsx.WithProfile(profile))
	}
	if region := cmd.String("region"); region != "" {
		cfgOpts = append(cfgOpts, awsx.WithRegion(region))
	}

	cfg, err := awsx.LoadConfig(ctx, cfgOpts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	return checkS3(ctx, cmd, awsx.NewS3(cfg), uri)
}

// checkS3 is split from runS3Check so tests can inject a fake client.
func checkS3(ctx context.Context, cmd *cli.Command, client s3scan.Client, uri string) error {
	var summary report.Summary
	colorize := useColor(cmd)
	failed := false

	skipped, err := s3scan.Scan(ctx, client, uri, config.Extensions(), func(key string, body []byte) error {
		hasOutputs, err := notebook.CheckBytes(body, key)
		if err != nil {
			return err
		}
		summary.Add(key, hasOutputs, len(body))
		if hasOutputs {
			failed = true
			report.Fail(os.Stderr, key, colorize)
		}
		return nil
	})
	if err != nil {
		return err
	}
	summary.Skipped = skipped

	if format := cmd.String("report"); format != "" {
		if err := summary.Write(os.Stdout, format); err != nil {
			return err
		}
	}

	if failed {
		return ErrCheckFailed
	}
	return nil
}
