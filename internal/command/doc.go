// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the notebook transform to the process boundary:
// argument handling, file enumeration, stdin/stdout streaming, and exit
// signaling.
//
// The external contract is flat (no subcommands):
//
//	nbstrip                          interactive no-op, exit 0
//	nbstrip < nb.ipynb               strip stdin to stdout
//	nbstrip --check < nb.ipynb       exit 1 if outputs present
//	nbstrip a.ipynb b.ipynb          strip each file in place
//	nbstrip --check a.ipynb          FAIL line per dirty file, exit 1 if any
//	nbstrip --check --s3 s3://b/p    check notebooks under an S3 prefix
//
// Check failures surface as ErrCheckFailed so main can map them to exit 1;
// parse and I/O errors propagate as ordinary errors and exit 2. There is no
// flag that suppresses either.
package command
