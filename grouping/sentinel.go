// Package grouping implements the grouping pipeline (spec.md §4.8, C8):
// group_by value suppression, page_by column removal plus spanning rows,
// and subline_by subheader bands, applied in that order to a materialized
// [][]string display matrix.
package grouping

import (
	"strings"

	"github.com/rupor-github/rtfdoc/common"
)

// FilterSentinel joins values with ", ", omitting any value equal to
// common.SentinelValue (spec.md §4.8's "divider filter"). Shared by
// page_by's spanning rows and subline_by's subheader paragraph.
func FilterSentinel(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v == common.SentinelValue {
			continue
		}
		kept = append(kept, v)
	}
	return strings.Join(kept, ", ")
}
