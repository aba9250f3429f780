// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nbstrip/nbstrip/internal/command"
	"github.com/nbstrip/nbstrip/internal/log"
	"github.com/nbstrip/nbstrip/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// normalizeArgs moves flags ahead of positional arguments so --check and
// --verify may appear anywhere on the line, the way the pre-commit hook
// passes them. Relative order within flags and within paths is preserved,
// and a value-taking flag keeps its value adjacent.
func normalizeArgs(args []string) []string {
	if len(args) <= 1 {
		return args
	}

	flags := []string{}
	paths := []string{}
	for i := 1; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			paths = append(paths, a)
			continue
		}
		flags = append(flags, a)
		if command.TakesValue(a) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	return append(append(args[:1:1], flags...), paths...)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
// Exit 1 is reserved for check mode finding outputs; any other failure
// (parse errors included) exits 2 so CI can tell the two apart.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 2
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrCheckFailed) {
			// Per-file diagnostics are already on stderr.
			log.Debugf("check failed")
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = normalizeArgs(args)
	log.Debugf("args normalized: args=%v", args)

	return initAndRunApp(args)
}
