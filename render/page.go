package render

import (
	"strings"

	"github.com/rupor-github/rtfdoc/paginate"
)

// pageBreakToken is the control sequence spec.md §6.3 inserts between
// pages, reissuing a pair of empty \fs2 paragraphs around the \page
// control so readers that ignore \page still see a visible break.
const pageBreakToken = `{\pard\fs2\par}\page{\pard\fs2\par}`

// PageInput holds one page's already-encoded RTF fragments. Every field
// here is the caller's responsibility to produce (via rtfenc/tableattrs/
// borders) before calling RenderPage; this package only decides ordering
// and page-break/geometry bookkeeping (spec.md §4.11).
type PageInput struct {
	Ctx paginate.PageContext

	Title           string
	Subline         string
	SublineByHeader string
	FigureBefore    string
	FigureAfter     string
	ColumnHeaderRows string
	PagebyTopRows   string
	BodyRows        []string
	// GroupBoundaryRows maps an absolute data-row index (Ctx.DataStart +
	// offset) to the spanning-row RTF that must be emitted immediately
	// before that row (spec.md §4.8's mid-page spanning rows).
	GroupBoundaryRows map[int]string
	Footnote          string
	Source            string
	// PageGeometry is the reissued paperw/paperh/margin block emitted
	// after the page-break token on every page but the first.
	PageGeometry string
}

// RenderPage emits one page's RTF in the exact order spec.md §4.11 lists:
// page-break token (if not the first page), title, subline, subline-by
// header, figure-before, column headers, top-of-page spanning rows, body
// rows interleaved with mid-page spanning rows, footnote, source,
// figure-after.
func RenderPage(in PageInput) string {
	var b strings.Builder

	if !in.Ctx.IsFirstPage {
		b.WriteString(pageBreakToken)
		b.WriteString(in.PageGeometry)
	}

	b.WriteString(in.Title)
	b.WriteString(in.Subline)
	b.WriteString(in.SublineByHeader)
	b.WriteString(in.FigureBefore)
	b.WriteString(in.ColumnHeaderRows)
	b.WriteString(in.PagebyTopRows)

	for i, row := range in.BodyRows {
		if boundary, ok := in.GroupBoundaryRows[in.Ctx.DataStart+i]; ok {
			b.WriteString(boundary)
		}
		b.WriteString(row)
	}

	b.WriteString(in.Footnote)
	b.WriteString(in.Source)
	b.WriteString(in.FigureAfter)
	return b.String()
}
