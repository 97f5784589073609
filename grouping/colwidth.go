package grouping

// ResliceColumnWidths drops the entries at removedCols from a col_rel_width
// sequence given for the original (pre-removal) column count, preserving
// order (spec.md §4.8: "entries at removed column indices are dropped").
func ResliceColumnWidths(widths []float64, removedCols []int) []float64 {
	removed := make(map[int]bool, len(removedCols))
	for _, idx := range removedCols {
		removed[idx] = true
	}
	out := make([]float64, 0, len(widths)-len(removedCols))
	for i, w := range widths {
		if !removed[i] {
			out = append(out, w)
		}
	}
	return out
}

// RedistributeColumnWidths builds an even col_rel_width sequence for
// remainingCols columns when the caller gave no explicit width list
// (spec.md §4.8: "otherwise widths are redistributed proportionally").
func RedistributeColumnWidths(remainingCols int) []float64 {
	if remainingCols <= 0 {
		return nil
	}
	out := make([]float64, remainingCols)
	for i := range out {
		out[i] = 1
	}
	return out
}
