package render

import (
	"strings"
	"testing"

	"github.com/rupor-github/rtfdoc/paginate"
)

func TestRenderPage_FirstPageNoBreakToken(t *testing.T) {
	out := RenderPage(PageInput{
		Ctx:   paginate.PageContext{IsFirstPage: true, DataStart: 0},
		Title: "TITLE",
	})
	if strings.Contains(out, `\page`) {
		t.Errorf("RenderPage() for first page must not emit a break token, got %q", out)
	}
	if !strings.HasPrefix(out, "TITLE") {
		t.Errorf("RenderPage() = %q, want to start with TITLE", out)
	}
}

func TestRenderPage_ContinuationPageHasBreakToken(t *testing.T) {
	out := RenderPage(PageInput{
		Ctx:          paginate.PageContext{IsFirstPage: false, DataStart: 3},
		PageGeometry: "GEOM",
		Title:        "TITLE",
	})
	if !strings.HasPrefix(out, pageBreakToken+"GEOM") {
		t.Errorf("RenderPage() = %q, want to start with break token + geometry", out)
	}
}

func TestRenderPage_Ordering(t *testing.T) {
	out := RenderPage(PageInput{
		Ctx:              paginate.PageContext{IsFirstPage: true},
		Title:            "T",
		Subline:          "S",
		SublineByHeader:  "U",
		FigureBefore:     "FB",
		ColumnHeaderRows: "H",
		PagebyTopRows:    "P",
		BodyRows:         []string{"R1", "R2"},
		Footnote:         "FN",
		Source:           "SRC",
		FigureAfter:      "FA",
	})
	want := "TSUFBHPR1R2FNSRCFA"
	if out != want {
		t.Errorf("RenderPage() = %q, want %q", out, want)
	}
}

func TestRenderPage_GroupBoundaryInterleaved(t *testing.T) {
	out := RenderPage(PageInput{
		Ctx:               paginate.PageContext{IsFirstPage: true, DataStart: 2},
		BodyRows:          []string{"R0", "R1", "R2"},
		GroupBoundaryRows: map[int]string{3: "BOUNDARY"},
	})
	want := "R0BOUNDARYR1R2"
	if out != want {
		t.Errorf("RenderPage() = %q, want %q", out, want)
	}
}
