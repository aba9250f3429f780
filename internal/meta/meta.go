// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/nbstrip/nbstrip/internal/config"
)

// Meta contains runtime metadata shared by the command layer. It carries the
// raw CLI arguments, the loaded configuration, and the invocation context.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
}
