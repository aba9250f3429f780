// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package notebook

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ScanOutputs reports whether raw notebook JSON carries outputs or execution
// counts, without materializing the document tree. For valid input the
// verdict matches HasOutputs over the decoded document.
func ScanOutputs(data []byte) bool {
	found := false
	gjson.GetBytes(data, "cells").ForEach(func(_, cell gjson.Result) bool {
		outputs := cell.Get("outputs")
		if outputs.IsArray() && len(outputs.Array()) > 0 {
			found = true
			return false
		}
		count := cell.Get("execution_count")
		if count.Exists() && count.Type != gjson.Null {
			found = true
			return false
		}
		return true
	})
	return found
}

// CheckBytes validates data and scans it for outputs in one pass. Malformed
// input yields a *ParseError so check mode fails closed instead of treating
// an unreadable notebook as clean.
func CheckBytes(data []byte, source string) (bool, error) {
	if !gjson.ValidBytes(data) {
		return false, &ParseError{Source: source, Err: errors.New("invalid JSON")}
	}
	if !gjson.ParseBytes(data).IsObject() {
		return false, &ParseError{Source: source, Err: errors.New("top-level value is not an object")}
	}
	return ScanOutputs(data), nil
}
