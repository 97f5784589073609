package document

import (
	"github.com/rupor-github/rtfdoc/borders"
	"github.com/rupor-github/rtfdoc/common"
	"github.com/rupor-github/rtfdoc/grouping"
	"github.com/rupor-github/rtfdoc/internal/frame"
	"github.com/rupor-github/rtfdoc/pagebreak"
	"github.com/rupor-github/rtfdoc/paginate"
	"github.com/rupor-github/rtfdoc/render"
	"github.com/rupor-github/rtfdoc/rtfenc"
	"github.com/rupor-github/rtfdoc/strwidth"
	"github.com/rupor-github/rtfdoc/tableattrs"
)

// Build drives the whole pipeline spec.md §4 lays out end to end: resolve
// per-cell attributes (C6), apply group_by/page_by/subline_by (C8),
// measure lines and plan pages (C7/C10), encode every row and wrapper
// component (C4/C5), render each page (C11), and assemble the final RTF
// document (C12). It is the one function cmd/rtfdoc wires a descriptor and
// a data frame into.
func Build(doc Document, f frame.Frame, oracle *strwidth.Oracle) (string, error) {
	ncols := f.NCols()
	if err := doc.Validate(ncols); err != nil {
		return "", err
	}
	columns := f.ColumnNames()
	if err := doc.validateColumnNames(columns); err != nil {
		return "", err
	}

	matrix := frame.Materialize(f)

	colWidth := doc.Page.ResolvedColWidth()
	defaults := tableattrs.DefaultsFor(tableattrs.KindBody)
	cellMatrix := tableattrs.Resolve(len(matrix), ncols, defaults, doc.Body.Spec)
	for r := range matrix {
		for c := range matrix[r] {
			cellMatrix[r][c].Text = matrix[r][c]
		}
	}

	groupIdx := columnIndices(columns, doc.Body.GroupBy)
	var groupSup grouping.SuppressionResult
	hasGroupBy := len(groupIdx) > 0
	if hasGroupBy {
		groupSup = grouping.ApplyGroupBy(matrix, groupIdx)
		for r := range matrix {
			for _, idx := range groupIdx {
				cellMatrix[r][idx].Text = groupSup.Display[r][idx]
			}
		}
	}

	// relWidth is already sized for the RENDERED column count: either the
	// caller supplied it that way (doc.Validate checked the length), or it
	// is generated evenly for the post-removal column count here.
	relWidth := doc.Body.ColRelWidth
	if len(relWidth) == 0 {
		relWidth = grouping.RedistributeColumnWidths(ncols - len(doc.Body.PageBy) - len(doc.Body.SublineBy))
	}

	// headerColumns tracks the surviving column names through each removal
	// so later index lookups (page_by indices after subline_by has already
	// removed columns) resolve against the current layout, not the frame's
	// original one.
	headerColumns := columns
	var pageByResult *grouping.PageByResult
	var sublineResult *grouping.SublineResult

	if len(doc.Body.SublineBy) > 0 {
		idx := columnIndices(headerColumns, doc.Body.SublineBy)
		sr := grouping.ApplySubline(matrix, idx)
		sublineResult = &sr
		matrix = sr.Display
		cellMatrix = removeCellColumns(cellMatrix, idx)
		headerColumns = removeNameColumns(headerColumns, idx)
	}
	if len(doc.Body.PageBy) > 0 {
		idx := columnIndices(headerColumns, doc.Body.PageBy)
		pr := grouping.ApplyPageBy(matrix, idx, doc.Body.NewPage)
		pageByResult = &pr
		matrix = pr.Display
		cellMatrix = removeCellColumns(cellMatrix, idx)
		headerColumns = removeNameColumns(headerColumns, idx)
	}

	colWidthsNonCum := nonCumulativeWidths(relWidth, colWidth)
	colWidthsIn := proportionalWidths(relWidth, colWidth)
	bandWidthIn := colWidth

	linesNeeded := make([]int, len(cellMatrix))
	for r, row := range cellMatrix {
		measures := make([]pagebreak.CellMeasure, len(row))
		height := 0.0
		for c, cell := range row {
			measures[c] = pagebreak.CellMeasure{Text: cell.Text, Font: cell.TextAttrs.Font, SizePt: cell.TextAttrs.SizePt}
			if cell.HeightIn > height {
				height = cell.HeightIn
			}
		}
		n, err := pagebreak.RowLinesNeeded(oracle, measures, colWidthsNonCum, nil, colWidth, height)
		if err != nil {
			return "", err
		}
		linesNeeded[r] = n
	}

	capacity := doc.Page.NRow - additionalRowsPerPage(doc, headerColumns)
	if capacity < 1 {
		capacity = 1
	}

	strategy := paginate.Select(pageByResult, sublineResult)
	pages, err := strategy.Paginate(linesNeeded, capacity)
	if err != nil {
		return "", err
	}

	// Context restoration (spec.md §4.8): a group_by value suppressed
	// because it repeated the prior row must still be visible on the first
	// row of every page, since that row no longer follows the row that
	// carried it. Row indices line up between groupSup.Display and
	// cellMatrix because only columns, never rows, were removed above.
	if hasGroupBy {
		groupIdxFinal := columnIndices(headerColumns, doc.Body.GroupBy)
		for _, pc := range pages {
			grouping.RestoreAtPageStart(groupSup, pc.DataStart)
			for _, idx := range groupIdxFinal {
				if idx >= 0 {
					cellMatrix[pc.DataStart][idx].Text = groupSup.Display[pc.DataStart][idx]
				}
			}
		}
	}

	cellTop := make([]common.BorderStyle, len(cellMatrix))
	cellBottom := make([]common.BorderStyle, len(cellMatrix))
	for r, row := range cellMatrix {
		cellTop[r] = row[0].BorderTop.Style
		cellBottom[r] = row[0].BorderBottom.Style
	}

	headerRows, err := columnHeaderRows(doc, headerColumns, colWidthsIn)
	if err != nil {
		return "", err
	}

	figBefore, figAfter, err := figureRTF(doc.Figure)
	if err != nil {
		return "", err
	}

	var pageBodies []string
	for _, pc := range pages {
		pageRows := cellMatrix[pc.DataStart : pc.DataEnd+1]

		footnoteShown := shouldRenderOn(doc.Page.PageFootnote, pc.IsFirstPage, pc.IsLastPage) && doc.Footnote != nil
		sourceShown := shouldRenderOn(doc.Page.PageSource, pc.IsFirstPage, pc.IsLastPage) && doc.Source != nil
		delegateLastRow := (footnoteShown && doc.Footnote.AsTable) || (sourceShown && doc.Source.AsTable)

		resolved := borders.Resolve(len(pageRows), cellTop[pc.DataStart:pc.DataEnd+1], cellBottom[pc.DataStart:pc.DataEnd+1], borders.Options{
			IsAbsoluteFirstPage:         pc.IsFirstPage,
			IsAbsoluteLastPage:          pc.IsLastPage,
			HasColumnHeaders:            headerRows != "",
			PageBorderFirst:             doc.Page.BorderFirst,
			PageBorderLast:              doc.Page.BorderLast,
			BodyBorderFirst:             cellTop[pc.DataStart],
			BodyBorderLast:              cellBottom[pc.DataEnd],
			FootnoteOrSourceAsTableHere: delegateLastRow,
		})

		encodedRows := make([]string, len(pageRows))
		for i, row := range pageRows {
			// Only the page's first and last row carry a lattice override
			// (spec.md §3.6); interior rows keep their already-resolved
			// per-cell borders untouched. The override paints every column
			// so the border line is continuous across the row.
			if i == 0 {
				for c := range row {
					row[c].BorderTop.Style = resolved.Top[0]
				}
			}
			if i == len(pageRows)-1 {
				for c := range row {
					row[c].BorderBottom.Style = resolved.Bottom[i]
				}
			}
			encoded, err := rtfenc.EncodeRow(row, colWidthsIn, defaults.TextJustification)
			if err != nil {
				return "", err
			}
			encodedRows[i] = encoded
		}

		delegatedBorder := borders.FootnoteSourceBorder(pc.IsLastPage, doc.Page.BorderLast, cellBottom[pc.DataEnd])

		boundaries := map[int]string{}
		for _, sr := range pc.GroupBoundaries {
			boundaries[sr.AtRow] = spanningRowRTF(sr.Text, colWidthsIn)
		}

		var pagebyTop string
		for _, sr := range pc.PagebyHeaderInfo {
			pagebyTop += spanningRowRTF(sr.Text, colWidthsIn)
		}

		var sublineHeader string
		if pc.SublineHeader != nil {
			sublineHeader = pc.SublineHeader.Text
		}

		// Source renders after footnote (spec.md §4.11): when both are shown
		// as tables on the same page, the delegated border_last goes to
		// source's own last row, not footnote's.
		var footnoteRTF, sourceRTF string
		if footnoteShown {
			border := common.BorderStyleEmpty
			if delegateLastRow && !sourceShown {
				border = delegatedBorder
			}
			footnoteRTF, err = renderTableText(doc.Footnote, tableattrs.KindFootnote, bandWidthIn, border)
			if err != nil {
				return "", err
			}
		}
		if sourceShown {
			border := common.BorderStyleEmpty
			if delegateLastRow {
				border = delegatedBorder
			}
			sourceRTF, err = renderTableText(doc.Source, tableattrs.KindSource, bandWidthIn, border)
			if err != nil {
				return "", err
			}
		}

		needsHeader := headerRows != "" && (pc.IsFirstPage || doc.Body.PagebyHeader)

		var pageHeaderRows string
		if needsHeader {
			pageHeaderRows = headerRows
		}

		title := ""
		if doc.Title != nil && shouldRenderOn(doc.Page.PageTitle, pc.IsFirstPage, pc.IsLastPage) {
			title = textComponentRTF(doc.Title, tableattrs.KindTitle)
		}
		// Subline reuses the title's defaults dictionary: spec.md §4.6 names
		// no distinct entry for it, and a subline is typographically a
		// second title band (GLOSSARY: "typically bold/centered").
		subline := textComponentRTF(doc.Subline, tableattrs.KindTitle)

		var fb, fa string
		if pc.IsFirstPage {
			fb = figBefore
		}
		if pc.IsLastPage {
			fa = figAfter
		}

		page := render.RenderPage(render.PageInput{
			Ctx:               pc,
			Title:             title,
			Subline:           subline,
			SublineByHeader:   sublineHeader,
			FigureBefore:      fb,
			ColumnHeaderRows:  pageHeaderRows,
			PagebyTopRows:     pagebyTop,
			BodyRows:          encodedRows,
			GroupBoundaryRows: boundaries,
			Footnote:          footnoteRTF,
			Source:            sourceRTF,
			FigureAfter:       fa,
			PageGeometry:      Preamble{Page: doc.Page}.Geometry(),
		})
		pageBodies = append(pageBodies, page)
	}

	pre := Preamble{Page: doc.Page}
	if doc.PageHeader != nil {
		pre.Header = rtfenc.EncodeHeader(textComponentRTF(doc.PageHeader, tableattrs.KindHeader))
	}
	if doc.PageFooter != nil {
		pre.Footer = rtfenc.EncodeFooter(textComponentRTF(doc.PageFooter, tableattrs.KindFooter))
	}

	return Assemble(pre, pageBodies)
}

// additionalRowsPerPage estimates spec.md §4.7's "additional non-data rows
// reserved per page": the column-header band (always reserved, since a
// continuation page may need to repeat it) plus any footnote/source that
// renders as its own bordered micro-table (one reserved row per line; a
// plain-paragraph footnote/source is not row-budgeted the way a table row
// is).
func additionalRowsPerPage(doc Document, headerColumns []string) int {
	rows := 0
	switch {
	case len(doc.ColumnHeader) > 0:
		rows += len(doc.ColumnHeader)
	case doc.Body.AsColHeader && len(headerColumns) > 0:
		rows++
	}
	if doc.Footnote != nil && doc.Footnote.AsTable {
		rows += len(doc.Footnote.Lines)
	}
	if doc.Source != nil && doc.Source.AsTable {
		rows += len(doc.Source.Lines)
	}
	return rows
}

func shouldRenderOn(p common.PagePlacement, isFirst, isLast bool) bool {
	switch p {
	case common.PlacementFirst:
		return isFirst
	case common.PlacementLast:
		return isLast
	default:
		return true
	}
}

func columnIndices(columns []string, names []string) []int {
	idx := make([]int, len(names))
	for i, n := range names {
		idx[i] = frame.ColumnIndex(columns, n)
	}
	return idx
}

func removeCellColumns(matrix [][]rtfenc.CellAttrs, colIdx []int) [][]rtfenc.CellAttrs {
	removed := make(map[int]bool, len(colIdx))
	for _, idx := range colIdx {
		removed[idx] = true
	}
	out := make([][]rtfenc.CellAttrs, len(matrix))
	for r, row := range matrix {
		kept := make([]rtfenc.CellAttrs, 0, len(row)-len(colIdx))
		for c, cell := range row {
			if !removed[c] {
				kept = append(kept, cell)
			}
		}
		out[r] = kept
	}
	return out
}

// removeNameColumns drops the named column-name entries at colIdx, the
// same shape of operation grouping.removeColumns performs on a [][]string
// display matrix, applied here to a single column-name row.
func removeNameColumns(names []string, colIdx []int) []string {
	removed := make(map[int]bool, len(colIdx))
	for _, idx := range colIdx {
		removed[idx] = true
	}
	out := make([]string, 0, len(names)-len(colIdx))
	for i, n := range names {
		if !removed[i] {
			out = append(out, n)
		}
	}
	return out
}

// nonCumulativeWidths turns a col_rel_width sequence into per-column
// widths in inches, summing to totalIn.
func nonCumulativeWidths(rel []float64, totalIn float64) []float64 {
	sum := 0.0
	for _, w := range rel {
		sum += w
	}
	if sum <= 0 {
		return nil
	}
	out := make([]float64, len(rel))
	for i, w := range rel {
		out[i] = w / sum * totalIn
	}
	return out
}

// proportionalWidths turns a col_rel_width sequence into cumulative
// right-edge positions in inches, the \cellx convention rtfenc.EncodeRow
// expects.
func proportionalWidths(rel []float64, totalIn float64) []float64 {
	sum := 0.0
	for _, w := range rel {
		sum += w
	}
	if sum <= 0 {
		return nil
	}
	out := make([]float64, len(rel))
	cum := 0.0
	for i, w := range rel {
		cum += w / sum * totalIn
		out[i] = cum
	}
	return out
}

func textComponentRTF(tc *TextComponent, kind tableattrs.ComponentKind) string {
	if tc == nil {
		return ""
	}
	defaults := tableattrs.DefaultsFor(kind)
	attrsRow := tableattrs.Resolve(1, 1, defaults, tc.Spec)[0][0].TextAttrs
	lines := make([]rtfenc.TextLine, len(tc.Lines))
	for i, l := range tc.Lines {
		lines[i] = rtfenc.TextLine{Text: l, Attrs: attrsRow}
	}
	out, err := rtfenc.EncodeLine(lines)
	if err != nil {
		return ""
	}
	return out
}

// columnHeaderRows renders the column_header stack (spec.md §3.2, §4.11):
// one physical row per TextComponent in doc.ColumnHeader, auto-generated
// from headerColumns when as_colheader is set and none was supplied.
func columnHeaderRows(doc Document, headerColumns []string, colWidthsIn []float64) (string, error) {
	components := doc.ColumnHeader
	if len(components) == 0 {
		if !doc.Body.AsColHeader {
			return "", nil
		}
		components = []TextComponent{{Lines: headerColumns}}
	}

	defaults := tableattrs.DefaultsFor(tableattrs.KindHeader)
	var out string
	for _, comp := range components {
		texts := comp.Lines
		if len(texts) == 0 {
			texts = headerColumns
		}
		cells := tableattrs.Resolve(1, len(headerColumns), defaults, comp.Spec)[0]
		for c := range cells {
			if c < len(texts) {
				cells[c].Text = texts[c]
			}
		}
		encoded, err := rtfenc.EncodeRow(cells, colWidthsIn, defaults.TextJustification)
		if err != nil {
			return "", err
		}
		out += encoded
	}
	return out, nil
}

// renderTableText renders a footnote/source component (spec.md §3.4,
// §4.11): as a bordered one-cell-per-line micro-table spanning the full
// band width when AsTable is set, else as ordinary paragraph text. When
// lastRowBorder is non-empty (the border resolver delegated body.border_
// last/page.border_last to this component, spec.md §3.6/§4.9), it is
// painted on the component's final row instead of the component's own
// configured border_bottom.
func renderTableText(tc *TableText, kind tableattrs.ComponentKind, bandWidthIn float64, lastRowBorder common.BorderStyle) (string, error) {
	if tc == nil {
		return "", nil
	}
	if !tc.AsTable {
		return textComponentRTF(&tc.TextComponent, kind), nil
	}

	defaults := tableattrs.DefaultsFor(kind)
	cells := tableattrs.Resolve(len(tc.Lines), 1, defaults, tc.Spec)
	var out string
	for i, row := range cells {
		row[0].Text = tc.Lines[i]
		if i == len(cells)-1 && lastRowBorder != common.BorderStyleEmpty {
			row[0].BorderBottom.Style = lastRowBorder
		}
		encoded, err := rtfenc.EncodeRow(row, []float64{bandWidthIn}, defaults.TextJustification)
		if err != nil {
			return "", err
		}
		out += encoded
	}
	return out, nil
}

func spanningRowRTF(text string, colWidthsIn []float64) string {
	cell := rtfenc.CellAttrs{Text: text}
	encoded, err := rtfenc.EncodeRow([]rtfenc.CellAttrs{cell}, []float64{colWidthsIn[len(colWidthsIn)-1]}, common.JustifyCenter)
	if err != nil {
		return ""
	}
	return encoded
}

// figureRTF renders the before/after figure groups (spec.md §6.4),
// returning empty strings when no figure is configured.
func figureRTF(fig *Figure) (before, after string, err error) {
	if fig == nil {
		return "", "", nil
	}
	var b string
	for i, data := range fig.Data {
		w, h := fig.WidthIn[i], fig.HeightIn[i]
		encoded, err := render.EncodeFigure(data, w, h, fig.Alignment)
		if err != nil {
			return "", "", err
		}
		b += encoded
	}
	if fig.Position == FigureAfter {
		return "", b, nil
	}
	return b, "", nil
}
