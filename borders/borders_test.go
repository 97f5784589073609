package borders

import (
	"testing"

	"github.com/rupor-github/rtfdoc/common"
)

func cellStyles(rows int, style common.BorderStyle) []common.BorderStyle {
	out := make([]common.BorderStyle, rows)
	for i := range out {
		out[i] = style
	}
	return out
}

func TestResolve_AbsoluteFirstPageNoHeaders(t *testing.T) {
	top := cellStyles(3, common.BorderStyleEmpty)
	bottom := cellStyles(3, common.BorderStyleEmpty)
	got := Resolve(3, top, bottom, Options{
		IsAbsoluteFirstPage: true,
		HasColumnHeaders:    false,
		PageBorderFirst:     common.BorderStyleDouble,
		BodyBorderFirst:     common.BorderStyleSingle,
	})
	if got.Top[0] != common.BorderStyleDouble {
		t.Errorf("Top[0] = %v, want double (page.border_first)", got.Top[0])
	}
}

func TestResolve_FirstPageWithHeadersUsesBodyBorder(t *testing.T) {
	top := cellStyles(2, common.BorderStyleEmpty)
	bottom := cellStyles(2, common.BorderStyleEmpty)
	got := Resolve(2, top, bottom, Options{
		IsAbsoluteFirstPage: true,
		HasColumnHeaders:    true,
		PageBorderFirst:     common.BorderStyleDouble,
		BodyBorderFirst:     common.BorderStyleSingle,
	})
	if got.Top[0] != common.BorderStyleSingle {
		t.Errorf("Top[0] = %v, want single (body.border_first)", got.Top[0])
	}
}

func TestResolve_ContinuationPageUsesBodyBorder(t *testing.T) {
	top := cellStyles(2, common.BorderStyleEmpty)
	bottom := cellStyles(2, common.BorderStyleEmpty)
	got := Resolve(2, top, bottom, Options{
		IsAbsoluteFirstPage: false,
		PageBorderFirst:     common.BorderStyleDouble,
		BodyBorderFirst:     common.BorderStyleSingle,
	})
	if got.Top[0] != common.BorderStyleSingle {
		t.Errorf("Top[0] = %v, want single (body.border_first)", got.Top[0])
	}
}

func TestResolve_AbsoluteLastPageBottom(t *testing.T) {
	top := cellStyles(2, common.BorderStyleEmpty)
	bottom := cellStyles(2, common.BorderStyleEmpty)
	got := Resolve(2, top, bottom, Options{
		IsAbsoluteLastPage: true,
		PageBorderLast:     common.BorderStyleThick,
		BodyBorderLast:     common.BorderStyleSingle,
	})
	if got.Bottom[1] != common.BorderStyleThick {
		t.Errorf("Bottom[last] = %v, want thick (page.border_last)", got.Bottom[1])
	}
	if got.LastRowDelegated {
		t.Error("LastRowDelegated should be false when no footnote/source table present")
	}
}

func TestResolve_ContinuationLastRowUsesBodyBorder(t *testing.T) {
	top := cellStyles(2, common.BorderStyleEmpty)
	bottom := cellStyles(2, common.BorderStyleEmpty)
	got := Resolve(2, top, bottom, Options{
		IsAbsoluteLastPage: false,
		PageBorderLast:     common.BorderStyleThick,
		BodyBorderLast:     common.BorderStyleSingle,
	})
	if got.Bottom[1] != common.BorderStyleSingle {
		t.Errorf("Bottom[last] = %v, want single (body.border_last)", got.Bottom[1])
	}
}

func TestResolve_DelegatesToFootnoteSourceTable(t *testing.T) {
	top := cellStyles(2, common.BorderStyleEmpty)
	bottom := cellStyles(2, common.BorderStyleSingle)
	got := Resolve(2, top, bottom, Options{
		IsAbsoluteLastPage:          true,
		PageBorderLast:              common.BorderStyleThick,
		BodyBorderLast:              common.BorderStyleSingle,
		FootnoteOrSourceAsTableHere: true,
	})
	if !got.LastRowDelegated {
		t.Error("LastRowDelegated should be true")
	}
	if got.Bottom[1] != common.BorderStyleSingle {
		t.Errorf("Bottom[last] = %v, want unchanged cell-level style", got.Bottom[1])
	}
}

func TestFootnoteSourceBorder(t *testing.T) {
	if got := FootnoteSourceBorder(true, common.BorderStyleThick, common.BorderStyleSingle); got != common.BorderStyleThick {
		t.Errorf("FootnoteSourceBorder(absolute last) = %v, want thick", got)
	}
	if got := FootnoteSourceBorder(false, common.BorderStyleThick, common.BorderStyleSingle); got != common.BorderStyleSingle {
		t.Errorf("FootnoteSourceBorder(continuation) = %v, want single", got)
	}
}

func TestResolve_ZeroRows(t *testing.T) {
	got := Resolve(0, nil, nil, Options{})
	if len(got.Top) != 0 || len(got.Bottom) != 0 {
		t.Errorf("Resolve(0 rows) = %+v, want empty slices", got)
	}
}
