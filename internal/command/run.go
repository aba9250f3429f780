// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/nbstrip/nbstrip/internal/config"
	"github.com/nbstrip/nbstrip/internal/diff"
	"github.com/nbstrip/nbstrip/internal/log"
	"github.com/nbstrip/nbstrip/internal/notebook"
	"github.com/nbstrip/nbstrip/internal/report"
)

// runAction is the action handler for the root command. It dispatches on the
// input source: an S3 prefix, positional file arguments, or stdin.
func runAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	checkMode := cmd.Bool("check")

	if uri := cmd.String("s3"); uri != "" {
		if !checkMode {
			return errors.New("--s3 requires --check: remote notebooks are never modified")
		}
		return runS3Check(ctx, cmd, uri)
	}

	if cmd.Args().Len() == 0 {
		return runStdin(ctx, cmd)
	}

	files, skipped := qualifyingFiles(cmd.Args().Slice(), config.Extensions())
	log.Debugf("files qualified: %d, skipped: %d", len(files), skipped)

	if checkMode {
		return runCheckFiles(ctx, cmd, files, skipped)
	}
	return runStripFiles(ctx, cmd, files)
}

// runStdin handles the no-argument forms: strip (or check) one document piped
// on stdin, or do nothing at all on an interactive terminal. The silent
// interactive no-op is deliberate; the hook installer runs the bare binary as
// a smoke test.
func runStdin(ctx context.Context, cmd *cli.Command) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		log.Debug("no arguments and no piped input")
		return nil
	}
	return runStream(ctx, cmd, os.Stdin, os.Stdout)
}

// runStream strips (or checks) one document from r. Split from runStdin so
// the filter path is testable without a real pipe.
func runStream(ctx context.Context, cmd *cli.Command, r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	if cmd.Bool("check") {
		hasOutputs, err := notebook.CheckBytes(data, "stdin")
		if err != nil {
			return err
		}
		if hasOutputs {
			return ErrCheckFailed
		}
		return nil
	}

	doc, err := notebook.Decode(bytes.NewReader(data), "stdin")
	if err != nil {
		return err
	}
	return notebook.Encode(w, notebook.Strip(doc, config.ExtraStripKeys()...))
}

// runCheckFiles scans each file read-only and reports the dirty ones. All
// files are scanned before failing so the user sees every offender at once.
func runCheckFiles(ctx context.Context, cmd *cli.Command, files []string, skipped int) error {
	summary := report.Summary{Skipped: skipped}
	colorize := useColor(cmd)
	extraKeys := config.ExtraStripKeys()
	failed := false

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		hasOutputs, err := notebook.CheckBytes(data, path)
		if err != nil {
			return err
		}
		summary.Add(path, hasOutputs, len(data))

		if !hasOutputs {
			continue
		}
		failed = true
		report.Fail(os.Stderr, path, colorize)

		if cmd.Bool("diff") {
			stripped, err := stripBytes(data, path, extraKeys)
			if err != nil {
				return err
			}
			if err := diff.Preview(os.Stderr, data, stripped, colorize); err != nil {
				log.Warnf("diff preview failed for %s: %v", path, err)
			}
		}
	}

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

// runStripFiles rewrites each file in place.
func runStripFiles(ctx context.Context, cmd *cli.Command, files []string) error {
	extraKeys := config.ExtraStripKeys()

	var totalBefore, totalAfter uint64
	for _, path := range files {
		before, after, err := stripFile(path, extraKeys)
		if err != nil {
			return err
		}
		totalBefore += uint64(before)
		totalAfter += uint64(after)
		log.Debugf("stripped %s: %s -> %s", path,
			humanize.Bytes(uint64(before)), humanize.Bytes(uint64(after)))
	}

	log.Infof("stripped %d notebooks: %s -> %s", len(files),
		humanize.Bytes(totalBefore), humanize.Bytes(totalAfter))
	return nil
}
