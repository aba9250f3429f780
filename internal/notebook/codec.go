// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package notebook

import (
	"encoding/json"
	"fmt"
	"io"
)

// ParseError reports input that is not a valid notebook document. It wraps
// the underlying JSON error and carries the source name (file path, "stdin",
// or an object key) for diagnostics.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: not a valid notebook document: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decode reads a single notebook document from r. The top-level value must be
// a JSON object with nothing trailing it; anything else is a *ParseError.
//
// Numbers are decoded as json.Number so integer values survive a
// decode/encode round trip verbatim.
func Decode(r io.Reader, source string) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	// One document per stream. Trailing non-whitespace is malformed input.
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Source: source, Err: fmt.Errorf("trailing data after document")}
	}

	return doc, nil
}

// Encode writes doc to w as UTF-8 JSON with one-space indentation, HTML
// escaping disabled (non-ASCII and <>& appear literally), and exactly one
// trailing newline. This is the canonical on-disk and on-stream form.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(doc)
}
