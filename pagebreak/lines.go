// Package pagebreak implements the page-break calculator (spec.md §4.7,
// C7): it estimates how many physical lines a row needs from the
// typographic width of its cell text, then walks the rows to produce page
// intervals honoring page capacity and forced breaks from grouping.
package pagebreak

import (
	"math"
	"strings"

	"github.com/rupor-github/rtfdoc/common"
	"github.com/rupor-github/rtfdoc/strwidth"
)

// splitExplicitLines breaks a cell's raw text on "\n" the same way the
// teacher's word splitter (convert/text/sentences.go SplitWords) scans for
// separator runes one at a time, here specialized to a single separator so
// a cell with explicit line breaks is measured line-by-line rather than as
// one run of text.
func splitExplicitLines(text string) []string {
	var (
		lines []string
		cur   strings.Builder
	)
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	return append(lines, cur.String())
}

// CellMeasure is the minimal information LinesNeeded needs about one cell:
// its text and the font/size it will render in.
type CellMeasure struct {
	Text   string
	Font   int
	SizePt float64
}

// LinesNeeded computes how many physical lines a single cell requires,
// given the oracle and the non-cumulative column width it renders into
// (spec.md §4.7): for each explicit line inside the cell text, take
// `floor(text_w/col_w) + 1` (the reference's convention, not a naive
// ceiling division), then sum across explicit lines. The result is never
// less than 1.
func LinesNeeded(o *strwidth.Oracle, m CellMeasure, colWidthIn float64) (int, error) {
	if colWidthIn <= 0 {
		return 1, nil
	}
	total := 0
	for _, line := range splitExplicitLines(m.Text) {
		w, err := o.Width(line, m.Font, m.SizePt, common.UnitInch, 0)
		if err != nil {
			return 0, err
		}
		total += int(math.Floor(w/colWidthIn)) + 1
	}
	if total < 1 {
		total = 1
	}
	return total, nil
}

// HeightLines converts a cell height in inches into a lower-bound line
// count, per spec.md §4.7's "enforce ⌈cell_height/0.15⌉ as a lower bound"
// (0.15in approximates one line at the engine's default 9pt body size).
func HeightLines(cellHeightIn float64) int {
	if cellHeightIn <= 0 {
		return 1
	}
	return int(math.Ceil(cellHeightIn / 0.15))
}

// RowLinesNeeded computes lines_needed(i) for a full row: the maximum
// across every displayed (non-spanning) cell's LinesNeeded, the maximum
// across spanning cells measured against the full band width, and the
// row's HeightLines lower bound.
func RowLinesNeeded(o *strwidth.Oracle, cells []CellMeasure, colWidthsIn []float64, spanningCells []CellMeasure, fullBandWidthIn, cellHeightIn float64) (int, error) {
	max := HeightLines(cellHeightIn)
	for j, m := range cells {
		n, err := LinesNeeded(o, m, colWidthsIn[j])
		if err != nil {
			return 0, err
		}
		if n > max {
			max = n
		}
	}
	for _, m := range spanningCells {
		n, err := LinesNeeded(o, m, fullBandWidthIn)
		if err != nil {
			return 0, err
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}
