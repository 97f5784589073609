package pagebreak

import "fmt"

// Interval is an inclusive [Start, End] range of data-row indices assigned
// to one physical page.
type Interval struct {
	Start int
	End   int
}

// Plan walks row-level line estimates and produces the page intervals
// covering [0, len(linesNeeded)-1] exactly (spec.md §4.7).
//
// capacity is `nrow - additional_rows_per_page`, already clamped to at
// least 1 by the caller's nrow validation. forceBreakBefore[i] reports
// whether a forced break (from page_by with new_page=true) must precede
// row i; it is consulted for i>=1 only, matching "emit a break when the
// group tuple differs between row i and row i+1".
func Plan(linesNeeded []int, capacity int, forceBreakBefore []bool) ([]Interval, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("pagebreak: capacity must be >= 1, got %d", capacity)
	}
	if len(linesNeeded) == 0 {
		return nil, nil
	}
	if forceBreakBefore != nil && len(forceBreakBefore) != len(linesNeeded) {
		return nil, fmt.Errorf("pagebreak: forceBreakBefore has %d entries, want %d", len(forceBreakBefore), len(linesNeeded))
	}

	var (
		out    []Interval
		cursor int
		start  int
	)
	for i, n := range linesNeeded {
		forced := i > 0 && forceBreakBefore != nil && forceBreakBefore[i]
		overflow := i > start && cursor+n > capacity
		if forced || overflow {
			out = append(out, Interval{Start: start, End: i - 1})
			start = i
			cursor = 0
		}
		cursor += n
	}
	out = append(out, Interval{Start: start, End: len(linesNeeded) - 1})
	return out, nil
}
