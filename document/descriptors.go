package document

import (
	"github.com/rupor-github/rtfdoc/common"
	"github.com/rupor-github/rtfdoc/tableattrs"
)

// TextComponent is a title, subline, page header, or page footer (spec.md
// §3.3): a sequence of lines plus the text attributes shared by all of
// them (per-line overrides, when needed, live in the Spec's broadcast
// values keyed by line index).
type TextComponent struct {
	Lines     []string
	Spec      tableattrs.Spec
	IndentRef common.TextIndentReference
	Placement common.PagePlacement
}

// Figure is the optional raster/EMF embed descriptor (spec.md §3.2, §6.4).
// Data holds already-decoded figure bytes rather than paths: spec.md §5
// requires the core encoder hold no file descriptors of its own, so a
// caller (the CLI layer) reads figure files once at initialization and
// hands Build the bytes.
type Figure struct {
	Data      [][]byte
	WidthIn   []float64
	HeightIn  []float64
	Alignment common.Justification
	Position  FigurePosition
}

// FigurePosition selects whether a figure renders before or after the
// table band.
type FigurePosition int

const (
	FigureBefore FigurePosition = iota
	FigureAfter
)

// Body is the body / table-text descriptor (spec.md §3.4).
type Body struct {
	Spec tableattrs.Spec

	ColRelWidth []float64

	AsColHeader bool
	GroupBy     []string
	PageBy      []string
	NewPage     bool
	PagebyHeader bool
	PagebyRow    common.PageByRowLocation
	SublineBy    []string
	LastRow      bool
}

// TableText is a footnote/source descriptor: a TextComponent plus the
// as_table flag selecting between a plain paragraph and a bordered
// micro-table render path (spec.md §3.2).
type TableText struct {
	TextComponent
	AsTable bool
}

// Page is the page descriptor (spec.md §3.2).
type Page struct {
	Orientation common.Orientation
	WidthIn     float64
	HeightIn    float64
	// Margin order: left, right, top, bottom, header, footer (inches).
	Margin [6]float64

	NRow int

	ColWidthIn float64

	BorderFirst common.BorderStyle
	BorderLast  common.BorderStyle

	PageTitle    common.PagePlacement
	PageFootnote common.PagePlacement
	PageSource   common.PagePlacement

	UseColor bool
}

// ResolvedWidthHeight fills in width/height from orientation when unset,
// using US Letter as the default physical sheet (8.5x11in).
func (p Page) ResolvedWidthHeight() (width, height float64) {
	width, height = p.WidthIn, p.HeightIn
	if width <= 0 || height <= 0 {
		width, height = 8.5, 11.0
	}
	if p.Orientation == common.OrientationLandscape && width < height {
		width, height = height, width
	}
	return width, height
}

// ResolvedColWidth returns ColWidthIn when set, else width minus left/right
// margin (spec.md §3.2).
func (p Page) ResolvedColWidth() float64 {
	if p.ColWidthIn > 0 {
		return p.ColWidthIn
	}
	width, _ := p.ResolvedWidthHeight()
	return width - p.Margin[0] - p.Margin[1]
}

// Document is the top-level descriptor a caller constructs once (spec.md
// §3.2, §6.1).
type Document struct {
	Page Page

	Title       *TextComponent
	Subline     *TextComponent
	PageHeader  *TextComponent
	PageFooter  *TextComponent
	ColumnHeader []TextComponent

	Body Body

	Footnote *TableText
	Source   *TableText

	Figure *Figure
}

// Validate checks the cross-field invariants of spec.md §3.6 that cannot be
// expressed by a single field's type, returning a *ValidationError on the
// first violation found.
func (d Document) Validate(ncolsOriginal int) error {
	if d.Page.NRow < 1 {
		return NewValidationError("page.nrow", "must be >= 1")
	}
	if d.Body.NewPage && len(d.Body.PageBy) == 0 {
		return NewValidationError("body.new_page", "requires body.page_by to be non-empty")
	}
	removed := len(d.Body.PageBy) + len(d.Body.SublineBy)
	rendered := ncolsOriginal - removed
	if rendered < 0 {
		return NewValidationError("body.page_by/subline_by", "remove more columns than the frame has")
	}
	if len(d.Body.ColRelWidth) > 0 && len(d.Body.ColRelWidth) != rendered {
		return NewValidationError("body.col_rel_width", "length must equal the rendered column count")
	}
	if d.Figure != nil {
		n := len(d.Figure.Data)
		if len(d.Figure.WidthIn) != n || len(d.Figure.HeightIn) != n {
			return NewValidationError("figure", "data/width_in/height_in must have matching length")
		}
		for _, f := range d.Figure.WidthIn {
			if f <= 0 {
				return NewValidationError("figure.width_in", "must be positive")
			}
		}
		for _, f := range d.Figure.HeightIn {
			if f <= 0 {
				return NewValidationError("figure.height_in", "must be positive")
			}
		}
	}
	return nil
}

// validateColumnNames checks that every name in group_by/page_by/
// subline_by refers to an actual column of the incoming frame (spec.md §7:
// "unknown column name in group_by/page_by/subline_by").
func (d Document) validateColumnNames(columns []string) error {
	known := make(map[string]bool, len(columns))
	for _, c := range columns {
		known[c] = true
	}
	check := func(field string, names []string) error {
		for _, n := range names {
			if !known[n] {
				return NewValidationError(field, "unknown column "+n)
			}
		}
		return nil
	}
	if err := check("body.group_by", d.Body.GroupBy); err != nil {
		return err
	}
	if err := check("body.page_by", d.Body.PageBy); err != nil {
		return err
	}
	if err := check("body.subline_by", d.Body.SublineBy); err != nil {
		return err
	}
	return nil
}
