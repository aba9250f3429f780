// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yamlsrc "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/nbstrip/nbstrip/internal/config"
)

// valueFlags are the flags that take a value in space-separated form.
var valueFlags = map[string]bool{
	"--report":  true,
	"--s3":      true,
	"--profile": true,
	"--region":  true,
}

// TakesValue reports whether arg is a flag whose value follows as the next
// argument. main's argument normalization needs this to keep flag and value
// adjacent when reordering.
func TakesValue(arg string) bool {
	return valueFlags[arg]
}

// NewFlags builds the flag set for the root command. Note that --check has
// --verify as a synonym, both long-form, matching the hook contract.
func NewFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "nbstrip version info",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "check",
			Aliases:     []string{"verify"},
			Usage:       "report notebooks containing outputs instead of stripping them",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "diff",
			Usage:       "with --check, show what stripping would change",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:  "color",
			Usage: "colorize diagnostics when stderr is a terminal",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("NBSTRIP_COLOR"),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: "with --check, emit a summary to stdout (json or yaml)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("NBSTRIP_REPORT"),
			),
			Validator: func(value string) error {
				switch value {
				case "", "json", "yaml":
					return nil
				}
				return fmt.Errorf("unsupported report format: %s (want json or yaml)", value)
			},
		},
		&cli.StringFlag{
			Name:  "s3",
			Usage: "with --check, scan notebooks under an s3://bucket/prefix URI",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("NBSTRIP_S3_URI"),
			),
		},
		newAWSFlag("profile", "AWS shared config profile for --s3", "NBSTRIP_AWS_PROFILE"),
		newAWSFlag("region", "AWS region override for --s3", "NBSTRIP_AWS_REGION"),
	}

	return flags
}

// newAWSFlag constructs an AWS override flag sourced from env and, when a
// config file is present, from its aws.* keys.
func newAWSFlag(name, usage, envVar string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  name,
		Usage: usage,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar(envVar),
		),
	}

	if src := config.Config.Source; src != "" {
		flag.Sources.Chain = append(flag.Sources.Chain,
			yamlsrc.YAML("aws."+name, altsrc.StringSourcer(src)))
	}

	return flag
}
