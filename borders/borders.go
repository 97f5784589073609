// Package borders implements the border resolver (spec.md §4.9, C9): a pure
// function that computes each physical page's top/bottom border override,
// applying the lattice document > page > body-first/last > body-top/bottom
// (spec.md §3.6). It never mutates cell-level borders; it only decides what
// belongs on row 0's top and the final row's bottom for one page.
package borders

import "github.com/rupor-github/rtfdoc/common"

// Options carries the page-level and body-level inputs the override
// lattice needs for one page. FootnoteOrSourceAsTableHere is true when a
// footnote or source component renders as a table AND appears on this
// page — in that case the data body's last row keeps its ordinary
// cell-level bottom border, and FootnoteSourceBorder tells the caller what
// to paint on that component's own bottom row instead.
type Options struct {
	IsAbsoluteFirstPage bool
	IsAbsoluteLastPage  bool
	HasColumnHeaders    bool

	PageBorderFirst common.BorderStyle
	PageBorderLast  common.BorderStyle
	BodyBorderFirst common.BorderStyle
	BodyBorderLast  common.BorderStyle

	FootnoteOrSourceAsTableHere bool
}

// Resolved holds the per-row top/bottom overrides for one page's body
// matrix, copied from the cell-level input with row 0 and the last row
// replaced per the lattice.
type Resolved struct {
	Top              []common.BorderStyle
	Bottom           []common.BorderStyle
	LastRowDelegated bool
}

// Resolve applies the override lattice to one page's body rows. cellTop and
// cellBottom are the already-resolved (via tableattrs) per-row cell-level
// top/bottom styles; both must have length rows.
func Resolve(rows int, cellTop, cellBottom []common.BorderStyle, opts Options) Resolved {
	top := append([]common.BorderStyle(nil), cellTop...)
	bottom := append([]common.BorderStyle(nil), cellBottom...)

	if rows == 0 {
		return Resolved{Top: top, Bottom: bottom}
	}

	if opts.IsAbsoluteFirstPage && !opts.HasColumnHeaders {
		top[0] = opts.PageBorderFirst
	} else {
		top[0] = opts.BodyBorderFirst
	}

	if opts.FootnoteOrSourceAsTableHere {
		return Resolved{Top: top, Bottom: bottom, LastRowDelegated: true}
	}

	if opts.IsAbsoluteLastPage {
		bottom[rows-1] = opts.PageBorderLast
	} else {
		bottom[rows-1] = opts.BodyBorderLast
	}
	return Resolved{Top: top, Bottom: bottom}
}

// FootnoteSourceBorder returns the border style a footnote/source
// component's own last row should carry when it absorbs border_last from
// the data body (spec.md §3.6: "it — not the last data row — receives
// page.border_last").
func FootnoteSourceBorder(isAbsoluteLastPage bool, pageBorderLast, bodyBorderLast common.BorderStyle) common.BorderStyle {
	if isAbsoluteLastPage {
		return pageBorderLast
	}
	return bodyBorderLast
}
