package grouping

// SuppressionResult is the outcome of ApplyGroupBy: a suppressed display
// matrix plus the original values needed to restore a page's first row.
type SuppressionResult struct {
	Display  [][]string
	Original [][]string
	ColIdx   []int
}

// ApplyGroupBy suppresses duplicate values within runs of the named group
// columns, in column order (spec.md §4.8): row i shows group column k's
// value iff i==0 or the tuple of group[0..k] differs from row i-1's tuple.
// The very first row of the frame is always shown in full. It never
// mutates matrix; Original is a copy of the pre-suppression values so a
// caller can restore them at a page's first row (context restoration).
func ApplyGroupBy(matrix [][]string, colIdx []int) SuppressionResult {
	display := make([][]string, len(matrix))
	original := make([][]string, len(matrix))
	for i, row := range matrix {
		display[i] = append([]string(nil), row...)
		original[i] = append([]string(nil), row...)
	}

	for i := 1; i < len(matrix); i++ {
		for k, idx := range colIdx {
			if tuplesDiffer(matrix[i], matrix[i-1], colIdx[:k+1]) {
				continue
			}
			display[i][idx] = ""
		}
	}
	return SuppressionResult{Display: display, Original: original, ColIdx: colIdx}
}

// tuplesDiffer reports whether row a and row b differ at any of the given
// column indices.
func tuplesDiffer(a, b []string, idx []int) bool {
	for _, j := range idx {
		if a[j] != b[j] {
			return true
		}
	}
	return false
}

// RestoreAtPageStart restores the original values of every group_by column
// on the given row of the suppressed display matrix (spec.md §4.8: "at
// every page boundary, restore the values of all group_by columns on the
// first row of the page"). It mutates display in place; callers normally
// invoke it once per page, for that page's first data-row index.
func RestoreAtPageStart(res SuppressionResult, row int) {
	for _, idx := range res.ColIdx {
		res.Display[row][idx] = res.Original[row][idx]
	}
}
