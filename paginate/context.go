// Package paginate implements the pagination strategy registry (spec.md
// §4.10, C10): given row-level line estimates and whatever grouping
// metadata the grouping pipeline (C8) produced, each strategy returns an
// ordered list of PageContext values, one per physical page.
package paginate

import (
	"github.com/rupor-github/rtfdoc/grouping"
	"github.com/rupor-github/rtfdoc/pagebreak"
)

// PageContext is everything the page renderer (C11) needs to materialize
// one physical page (spec.md §4.10).
type PageContext struct {
	PageNumber int
	TotalPages int

	DataStart int // inclusive row index into the display matrix
	DataEnd   int // inclusive

	NeedsHeader bool
	IsFirstPage bool
	IsLastPage  bool

	// PagebyHeaderInfo holds the spanning rows that belong at the top of
	// this page (either because the page starts mid-group and the group's
	// context must be restated, or because the group boundary coincides
	// with this page's first row).
	PagebyHeaderInfo []grouping.SpanningRow

	// GroupBoundaries holds spanning rows that land strictly inside this
	// page (not at its very first row), to be interleaved with body rows.
	GroupBoundaries []grouping.SpanningRow

	SublineHeader *grouping.SublineBand
}

// buildContexts turns a sequence of row intervals into PageContext values
// with page numbers and first/last flags filled in. Strategies call this
// once they have their interval list, then attach their own metadata.
func buildContexts(intervals []pagebreak.Interval) []PageContext {
	pages := make([]PageContext, len(intervals))
	for i, iv := range intervals {
		pages[i] = PageContext{
			PageNumber:  i + 1,
			TotalPages:  len(intervals),
			DataStart:   iv.Start,
			DataEnd:     iv.End,
			NeedsHeader: true,
			IsFirstPage: i == 0,
			IsLastPage:  i == len(intervals)-1,
		}
	}
	return pages
}
