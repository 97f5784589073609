package paginate

import (
	"github.com/rupor-github/rtfdoc/grouping"
	"github.com/rupor-github/rtfdoc/pagebreak"
)

// Strategy dispatches to one of the three pagination behaviors spec.md
// §4.10 names, selected by descriptor state rather than inheritance.
type Strategy interface {
	Paginate(linesNeeded []int, capacity int) ([]PageContext, error)
}

// Select returns the strategy appropriate for the given descriptor state
// (spec.md §4.10): PageByStrategy when page_by is set, SublineStrategy
// when subline_by is set, DefaultStrategy otherwise. page_by and
// subline_by are mutually exclusive at the strategy-selection level
// (subline_by forces its own new_page=true semantics); a body carrying
// both uses SublineStrategy and folds the page_by result in via pageBy.
func Select(pageBy *grouping.PageByResult, subline *grouping.SublineResult) Strategy {
	switch {
	case subline != nil:
		return &SublineStrategy{Result: subline, PageBy: pageBy}
	case pageBy != nil:
		return &PageByStrategy{Result: pageBy}
	default:
		return &DefaultStrategy{}
	}
}

// DefaultStrategy paginates with no forced breaks (spec.md §4.10).
type DefaultStrategy struct{}

func (s *DefaultStrategy) Paginate(linesNeeded []int, capacity int) ([]PageContext, error) {
	intervals, err := pagebreak.Plan(linesNeeded, capacity, nil)
	if err != nil {
		return nil, err
	}
	return buildContexts(intervals), nil
}

// PageByStrategy paginates with page_by's forced breaks and computes per-
// page header/mid-page spanning-row placement (spec.md §4.10).
type PageByStrategy struct {
	Result *grouping.PageByResult
}

func (s *PageByStrategy) Paginate(linesNeeded []int, capacity int) ([]PageContext, error) {
	intervals, err := pagebreak.Plan(linesNeeded, capacity, s.Result.ForceBreakBefore)
	if err != nil {
		return nil, err
	}
	pages := buildContexts(intervals)
	attachSpanningRows(pages, s.Result.SpanningRows)
	return pages, nil
}

// SublineStrategy forces new_page=true along subline_by columns and
// attaches a subline_header to each page (spec.md §4.10). When the body
// also carries page_by, that result's spanning rows are attached too.
type SublineStrategy struct {
	Result *grouping.SublineResult
	PageBy *grouping.PageByResult
}

func (s *SublineStrategy) Paginate(linesNeeded []int, capacity int) ([]PageContext, error) {
	forced := s.Result.ForceBreakBefore
	if s.PageBy != nil {
		forced = mergeForceBreaks(forced, s.PageBy.ForceBreakBefore)
	}
	intervals, err := pagebreak.Plan(linesNeeded, capacity, forced)
	if err != nil {
		return nil, err
	}
	pages := buildContexts(intervals)
	if s.PageBy != nil {
		attachSpanningRows(pages, s.PageBy.SpanningRows)
	}
	attachSublineBands(pages, s.Result.Bands)
	return pages, nil
}

func mergeForceBreaks(a, b []bool) []bool {
	out := make([]bool, len(a))
	for i := range out {
		out[i] = a[i] || (i < len(b) && b[i])
	}
	return out
}

// attachSpanningRows assigns each spanning row to the page it falls on:
// PagebyHeaderInfo when it lands exactly on the page's first row,
// GroupBoundaries otherwise.
func attachSpanningRows(pages []PageContext, rows []grouping.SpanningRow) {
	for _, sr := range rows {
		for i := range pages {
			p := &pages[i]
			if sr.AtRow < p.DataStart || sr.AtRow > p.DataEnd {
				continue
			}
			if sr.AtRow == p.DataStart {
				p.PagebyHeaderInfo = append(p.PagebyHeaderInfo, sr)
			} else {
				p.GroupBoundaries = append(p.GroupBoundaries, sr)
			}
			break
		}
	}
}

func attachSublineBands(pages []PageContext, bands []grouping.SublineBand) {
	for _, band := range bands {
		for i := range pages {
			p := &pages[i]
			if band.AtRow < p.DataStart || band.AtRow > p.DataEnd {
				continue
			}
			b := band
			p.SublineHeader = &b
			break
		}
	}
}
