// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package diff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewShowsStrippedFields(t *testing.T) {
	before := []byte(`{"cells":[{"outputs":[{"output_type":"stream","text":["secret"]}],"execution_count":3}]}`)
	after := []byte(`{"cells":[{"outputs":[],"execution_count":null}]}`)

	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, before, after, false))

	out := buf.String()
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "outputs")
	assert.Contains(t, out, "execution_count")
}

func TestPreviewIdenticalDocumentsSilent(t *testing.T) {
	doc := []byte(`{"cells":[{"outputs":[],"execution_count":null}]}`)

	var buf bytes.Buffer
	require.NoError(t, Preview(&buf, doc, doc, false))
	assert.Empty(t, buf.String())
}

func TestPreviewMalformedInput(t *testing.T) {
	var buf bytes.Buffer
	err := Preview(&buf, []byte(`{`), []byte(`{}`), false)
	assert.Error(t, err)
}
