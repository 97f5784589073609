package tableattrs

import "github.com/rupor-github/rtfdoc/rtfenc"

// CellIndex identifies one (row, col) position in a resolved attribute
// matrix.
type CellIndex struct {
	Row int
	Col int
}

// ExtractSection selects the resolved attributes at each given index, in
// order, out of a full (rows, cols) matrix produced by Resolve. The
// grouping pipeline (C8) uses this to pull a single column's attributes out
// of the body matrix when building a page_by/subline_by spanning-row or
// subline-paragraph micro-table, without having to re-run Resolve against a
// synthetic one-row Spec.
func ExtractSection(matrix [][]rtfenc.CellAttrs, indices []CellIndex) []rtfenc.CellAttrs {
	out := make([]rtfenc.CellAttrs, len(indices))
	for i, idx := range indices {
		out[i] = matrix[idx.Row][idx.Col]
	}
	return out
}
