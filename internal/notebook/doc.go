// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package notebook implements the core transform over Jupyter notebook
// documents: stripping outputs, execution counts, and transient metadata,
// and checking for their presence.
//
// The package is deliberately version-agnostic with respect to the nbformat
// schema. It only touches the fields relevant to leakage prevention:
//
//   - cells[].outputs          : emptied (key kept)
//   - cells[].execution_count  : nulled (key kept)
//   - cells[].metadata         : transient keys removed
//   - metadata.signature       : removed
//   - metadata.widgets         : removed
//
// Everything else in the document (cell source, cell order, cell type,
// non-transient metadata) passes through untouched. Key ordering in the
// serialized form is not preserved; values are.
//
// Strip and HasOutputs operate on an in-memory Document and perform no I/O,
// so callers can test them with literal documents. Decode and Encode are the
// only JSON boundary. A document that fails to decode yields a *ParseError
// with no recovery path: the tool exists to prevent outputs from reaching
// version control, so an unreadable notebook must never pass silently.
//
// ScanOutputs and CheckBytes are a read-only fast path for check mode. They
// walk the raw JSON with gjson instead of materializing the tree, and return
// the same verdict HasOutputs would for the decoded document.
package notebook
