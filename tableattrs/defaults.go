// Package tableattrs implements the table attribute resolver (spec.md §4.6,
// C6): it merges a component's immutable defaults dictionary with whatever
// fields the caller supplied, then expands the result into a per-cell
// rtfenc.CellAttrs matrix via broadcast.Value. It also offers the "section
// attribute extractor" C8 uses to build spanning-row micro-tables.
package tableattrs

import "github.com/rupor-github/rtfdoc/common"

// ComponentKind names which of the six standard components a Defaults
// dictionary belongs to (spec.md §4.6's "known defaults per table").
type ComponentKind int

const (
	KindBody ComponentKind = iota
	KindTitle
	KindFootnote
	KindSource
	KindHeader
	KindFooter
)

// Defaults holds one component kind's built-in attribute values, installed
// once at construction and never mutated afterward.
type Defaults struct {
	BorderFirst  common.BorderStyle
	BorderLast   common.BorderStyle
	BorderLeft   common.BorderStyle
	BorderRight  common.BorderStyle
	BorderTop    common.BorderStyle
	BorderBottom common.BorderStyle
	BorderWidth  int // twips

	CellVerticalJustification common.VerticalJustification
	TextJustification         common.Justification

	Font         int
	SizePt       float64
	Hyphenation  bool
	Convert      bool
	CellHeightIn float64
}

// DefaultsFor returns the built-in defaults dictionary for one component
// kind (spec.md §4.6): border_first/last/left/right = single, border_top/
// bottom empty, cell_vertical_justification = center, text_justification =
// c, font = 1, size = 9, hyphenation = false; text_convert is true for body
// and title, false for footnote/source/header/footer.
func DefaultsFor(kind ComponentKind) Defaults {
	d := Defaults{
		BorderFirst:               common.BorderStyleSingle,
		BorderLast:                common.BorderStyleSingle,
		BorderLeft:                common.BorderStyleSingle,
		BorderRight:               common.BorderStyleSingle,
		BorderTop:                 common.BorderStyleEmpty,
		BorderBottom:              common.BorderStyleEmpty,
		BorderWidth:               15,
		CellVerticalJustification: common.VJustifyCenter,
		TextJustification:         common.JustifyCenter,
		Font:                      1,
		SizePt:                    9,
		Hyphenation:               false,
		CellHeightIn:              0.15,
	}
	switch kind {
	case KindBody, KindTitle:
		d.Convert = true
	default:
		d.Convert = false
	}
	return d
}
