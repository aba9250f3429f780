// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "program only",
			args:     []string{"nbstrip"},
			expected: []string{"nbstrip"},
		},
		{
			name:     "flag already leading",
			args:     []string{"nbstrip", "--check", "a.ipynb"},
			expected: []string{"nbstrip", "--check", "a.ipynb"},
		},
		{
			name:     "flag after path",
			args:     []string{"nbstrip", "a.ipynb", "--check"},
			expected: []string{"nbstrip", "--check", "a.ipynb"},
		},
		{
			name:     "flag between paths",
			args:     []string{"nbstrip", "a.ipynb", "--verify", "b.ipynb"},
			expected: []string{"nbstrip", "--verify", "a.ipynb", "b.ipynb"},
		},
		{
			name:     "paths only",
			args:     []string{"nbstrip", "a.ipynb", "b.ipynb"},
			expected: []string{"nbstrip", "a.ipynb", "b.ipynb"},
		},
		{
			name:     "path order preserved",
			args:     []string{"nbstrip", "z.ipynb", "--check", "a.ipynb"},
			expected: []string{"nbstrip", "--check", "z.ipynb", "a.ipynb"},
		},
		{
			name:     "value flag keeps its value",
			args:     []string{"nbstrip", "a.ipynb", "--report", "json", "b.ipynb"},
			expected: []string{"nbstrip", "--report", "json", "a.ipynb", "b.ipynb"},
		},
		{
			name:     "equals syntax unaffected",
			args:     []string{"nbstrip", "a.ipynb", "--report=yaml"},
			expected: []string{"nbstrip", "--report=yaml", "a.ipynb"},
		},
		{
			name:     "s3 flag with uri",
			args:     []string{"nbstrip", "--check", "--s3", "s3://lake/nb"},
			expected: []string{"nbstrip", "--check", "--s3", "s3://lake/nb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizeArgs(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("normalizeArgs(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestNormalizeArgsDoesNotAliasInput(t *testing.T) {
	args := []string{"nbstrip", "a.ipynb", "--check"}
	_ = normalizeArgs(args)

	expected := []string{"nbstrip", "a.ipynb", "--check"}
	if !reflect.DeepEqual(args, expected) {
		t.Errorf("input mutated: got %v, want %v", args, expected)
	}
}

func TestHandleVersion(t *testing.T) {
	if !handleVersion([]string{"nbstrip", "--version"}) {
		t.Error("expected --version to be handled")
	}
	if !handleVersion([]string{"nbstrip", "-v"}) {
		t.Error("expected -v to be handled")
	}
	if handleVersion([]string{"nbstrip", "a.ipynb"}) {
		t.Error("did not expect version handling")
	}
}
