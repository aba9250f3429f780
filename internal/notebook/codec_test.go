// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package notebook

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not JSON", input: `this is not a notebook`},
		{name: "truncated", input: `{"cells":[`},
		{name: "top-level array", input: `[1,2,3]`},
		{name: "top-level string", input: `"nb"`},
		{name: "trailing garbage", input: `{"cells":[]}{"cells":[]}`},
		{name: "empty input", input: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), "bad.ipynb")
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "bad.ipynb", perr.Source)
			assert.Contains(t, err.Error(), "bad.ipynb")
		})
	}
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	doc, err := Decode(strings.NewReader("{\"cells\":[]}\n\n"), "ok.ipynb")
	require.NoError(t, err)
	assert.Equal(t, Document{"cells": []any{}}, doc)
}

func TestEncodeFormatting(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"cells":[{"source":["print('é <&>')"]}]}`), "stdin")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	out := buf.String()

	// Non-ASCII and HTML-significant characters stay literal.
	assert.Contains(t, out, "é <&>")
	assert.NotContains(t, out, `\u`)

	// One-space indentation per nesting level.
	assert.Contains(t, out, "{\n \"cells\": [\n")

	// Exactly one trailing newline.
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestRoundTripPreservesIntegers(t *testing.T) {
	input := `{"cells":[{"execution_count":12345678901234},{"metadata":{"n":3}}]}`

	doc, err := Decode(strings.NewReader(input), "stdin")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	assert.Contains(t, buf.String(), "12345678901234")
	assert.Contains(t, buf.String(), `"n": 3`)
}
