package grouping

// SublineBand is one subline_by subheader: the paragraph text to draw
// above the column headers on the page starting at AtRow.
type SublineBand struct {
	AtRow int
	Text  string
}

// SublineResult is the outcome of ApplySubline.
type SublineResult struct {
	Display          [][]string
	RemovedCols      []int
	Bands            []SublineBand
	ForceBreakBefore []bool
}

// ApplySubline removes the named subline_by columns and computes the
// subheader bands (spec.md §4.8): behaves like page_by with new_page=true
// (forced break at every group change) but additionally records a subline
// paragraph ("col1 value, col2 value, …", sentinel-filtered) instead of an
// in-table spanning row.
func ApplySubline(matrix [][]string, colIdx []int) SublineResult {
	pb := applyPageByForced(matrix, removeColumns(matrix, colIdx), colIdx)

	bands := make([]SublineBand, len(pb.SpanningRows))
	for i, sr := range pb.SpanningRows {
		bands[i] = SublineBand{AtRow: sr.AtRow, Text: sr.Text}
	}
	return SublineResult{
		Display:          pb.Display,
		RemovedCols:      pb.RemovedCols,
		Bands:            bands,
		ForceBreakBefore: pb.ForceBreakBefore,
	}
}
