// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package notebook

// Document is a parsed notebook JSON tree. The shape is intentionally loose
// (map[string]any) so the transform works across nbformat versions without a
// schema dependency.
type Document = map[string]any

// TransientCellMetadataKeys are the cell-level metadata keys that carry
// execution-time state and are always removed during stripping. Callers may
// extend the set via Strip's extraKeys, but nothing can shrink it.
var TransientCellMetadataKeys = []string{
	"collapsed",
	"scrolled",
	"ExecuteTime",
	"execution",
	"heading_collapsed",
	"hidden",
}

// Strip clears all output-bearing fields from doc in place and returns it.
//
// For every cell: an existing outputs key is reset to an empty sequence, an
// existing execution_count key is set to null, and transient metadata keys
// (the built-in set plus any extraKeys) are deleted. At the document level
// the signature and widgets metadata entries are deleted. A document with no
// cells key is treated as having zero cells.
//
// Strip is idempotent: applying it twice yields the same result as once.
func Strip(doc Document, extraKeys ...string) Document {
	cells, _ := doc["cells"].([]any)
	for _, c := range cells {
		cell, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if _, ok := cell["outputs"]; ok {
			cell["outputs"] = []any{}
		}
		if _, ok := cell["execution_count"]; ok {
			cell["execution_count"] = nil
		}
		if md, ok := cell["metadata"].(map[string]any); ok {
			for _, key := range TransientCellMetadataKeys {
				delete(md, key)
			}
			for _, key := range extraKeys {
				delete(md, key)
			}
		}
	}

	if md, ok := doc["metadata"].(map[string]any); ok {
		delete(md, "signature")
		delete(md, "widgets")
	}

	return doc
}

// HasOutputs reports whether any cell carries a non-empty outputs sequence or
// a non-null execution_count. It does not mutate doc.
func HasOutputs(doc Document) bool {
	cells, _ := doc["cells"].([]any)
	for _, c := range cells {
		cell, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if outputs, ok := cell["outputs"].([]any); ok && len(outputs) > 0 {
			return true
		}
		if count, ok := cell["execution_count"]; ok && count != nil {
			return true
		}
	}
	return false
}
