// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package notebook

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanOutputsMatchesHasOutputs(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"cells":[]}`,
		`{"cells":[{"outputs":[]}]}`,
		`{"cells":[{"outputs":[{"output_type":"stream","text":["hi"]}]}]}`,
		`{"cells":[{"execution_count":null}]}`,
		`{"cells":[{"execution_count":0}]}`,
		`{"cells":[{"outputs":[],"execution_count":null},{"execution_count":4}]}`,
		`{"cells":[{"cell_type":"markdown","source":["x"]}],"metadata":{"signature":"s"}}`,
	}

	for _, input := range inputs {
		doc, err := Decode(strings.NewReader(input), "literal")
		require.NoError(t, err)
		assert.Equal(t, HasOutputs(doc), ScanOutputs([]byte(input)), "input: %s", input)
	}
}

func TestCheckBytes(t *testing.T) {
	dirty, err := CheckBytes([]byte(`{"cells":[{"outputs":[{"x":1}]}]}`), "a.ipynb")
	require.NoError(t, err)
	assert.True(t, dirty)

	clean, err := CheckBytes([]byte(`{"cells":[{"outputs":[]}]}`), "b.ipynb")
	require.NoError(t, err)
	assert.False(t, clean)
}

func TestCheckBytesFailsClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid JSON", input: `{"cells":`},
		{name: "non-object top level", input: `[{"outputs":[{"x":1}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckBytes([]byte(tt.input), "bad.ipynb")
			require.Error(t, err)

			var perr *ParseError
			assert.True(t, errors.As(err, &perr))
		})
	}
}
