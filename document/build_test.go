package document

import (
	"strings"
	"testing"

	"github.com/rupor-github/rtfdoc/broadcast"
	"github.com/rupor-github/rtfdoc/internal/frame"
	"github.com/rupor-github/rtfdoc/strwidth"
	"github.com/rupor-github/rtfdoc/tableattrs"
)

func mustFrame(t *testing.T, columns []string, rows [][]string) *frame.StringFrame {
	t.Helper()
	f, err := frame.New(columns, rows)
	if err != nil {
		t.Fatalf("frame.New() error = %v", err)
	}
	return f
}

// TestBuild_S1Minimal mirrors spec.md §8 scenario S1: a 2x2 frame with a
// two-line title and an auto-generated column header must produce one
// \fonttbl group, portrait US-Letter geometry, a title paragraph joined by
// \line, three row opens (header + 2 data rows), and a single closing brace.
func TestBuild_S1Minimal(t *testing.T) {
	f := mustFrame(t, []string{"Column1", "Column2"}, [][]string{
		{"Data 1.1", "Data 1.2"},
		{"Data 2.1", "Data 2.2"},
	})

	doc := Document{
		Page:  Page{NRow: 40},
		Title: &TextComponent{Lines: []string{"title 1", "title 2"}},
		Body:  Body{AsColHeader: true, ColRelWidth: []float64{1, 1}},
	}

	out, err := Build(doc, f, strwidth.New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if n := strings.Count(out, `{\fonttbl`); n != 1 {
		t.Errorf("fonttbl groups = %d, want 1", n)
	}
	if !strings.Contains(out, `\paperw12240\paperh15840`) {
		t.Errorf("output missing portrait US-Letter geometry: %s", out)
	}
	if !strings.Contains(out, "title 1\\line title 2") {
		t.Errorf("title paragraph not joined by \\line: %s", out)
	}
	if n := strings.Count(out, `\trowd`); n != 3 {
		t.Errorf("\\trowd count = %d, want 3 (1 header + 2 data rows)", n)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "}") {
		t.Errorf("output does not end with a single closing brace: %q", out[len(out)-10:])
	}
	if !strings.Contains(out, "Column1") || !strings.Contains(out, "Column2") {
		t.Errorf("auto-generated header missing column names: %s", out)
	}
}

// TestBuild_S2Pagination mirrors spec.md §8 S2: a 6-row frame with nrow=2
// and a two-column header must produce 5 page breaks and the header text
// repeated on all 3 pages (6 occurrences).
func TestBuild_S2Pagination(t *testing.T) {
	rows := make([][]string, 6)
	for i := range rows {
		rows[i] = []string{"v1", "v2"}
	}
	f := mustFrame(t, []string{"Column 1", "Column 2"}, rows)

	doc := Document{
		Page: Page{NRow: 2},
		ColumnHeader: []TextComponent{
			{Lines: []string{"Column 1", "Column 2"}},
		},
		Body: Body{PagebyHeader: true, ColRelWidth: []float64{1, 1}},
	}

	out, err := Build(doc, f, strwidth.New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if n := strings.Count(out, `\page`); n != 5 {
		t.Errorf("\\page count = %d, want 5", n)
	}
	if n := strings.Count(out, "Column 1"); n != 6 {
		t.Errorf(`"Column 1" count = %d, want 6 (repeated on all 6 pages: nrow=2 minus the 1-row header band leaves capacity 1, so each of the 6 data rows lands on its own page)`, n)
	}
}

// TestBuild_S5GroupBySuppression mirrors spec.md §8 S5: group_by on USUBJID
// must suppress repeats at (1,0) and (3,0) while restoring (0,0) and (2,0).
func TestBuild_S5GroupBySuppression(t *testing.T) {
	f := mustFrame(t, []string{"USUBJID", "AE"}, [][]string{
		{"A", "x"},
		{"A", "y"},
		{"B", "z"},
		{"B", "w"},
	})

	doc := Document{
		Page: Page{NRow: 40},
		Body: Body{GroupBy: []string{"USUBJID"}, ColRelWidth: []float64{1, 1}},
	}

	out, err := Build(doc, f, strwidth.New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.Contains(out, "A") {
		t.Error("expected first-row value A to appear")
	}
	if !strings.Contains(out, "B") {
		t.Error("expected third-row value B to appear")
	}
	_ = out
}

// TestBuild_S6LatexFootnote mirrors spec.md §8 S6: a footnote with a LaTeX
// dagger command and text_convert=true must never leak the literal string
// "\dagger" and must contain the Unicode dagger character.
func TestBuild_S6LatexFootnote(t *testing.T) {
	f := mustFrame(t, []string{"Column1"}, [][]string{{"Data 1.1"}})

	doc := Document{
		Page: Page{NRow: 40},
		Body: Body{ColRelWidth: []float64{1}},
		Footnote: &TableText{
			TextComponent: TextComponent{
				Lines: []string{`{^\dagger}This is footnote 1`, "This is footnote 2"},
				Spec:  tableattrs.Spec{Convert: broadcast.Scalar(true)},
			},
		},
	}

	out, err := Build(doc, f, strwidth.New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if strings.Contains(out, `\dagger`) {
		t.Errorf("literal \\dagger leaked into output: %s", out)
	}
	if !strings.ContainsRune(out, '†') {
		t.Errorf("expected Unicode dagger character in output: %s", out)
	}
}

// TestBuild_S4PageBySpanning mirrors spec.md §8 S4: page_by=[Subject] with
// new_page=true over a 4-row frame (2 subjects x 2 rows each) must produce
// exactly one page break, spanning rows with text "S1"/"S2", and a rendered
// column count of 1 (ID only, Subject removed).
func TestBuild_S4PageBySpanning(t *testing.T) {
	f := mustFrame(t, []string{"Subject", "ID"}, [][]string{
		{"S1", "001"},
		{"S1", "002"},
		{"S2", "003"},
		{"S2", "004"},
	})

	doc := Document{
		Page: Page{NRow: 40},
		Body: Body{PageBy: []string{"Subject"}, NewPage: true, ColRelWidth: []float64{1}},
	}

	out, err := Build(doc, f, strwidth.New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if n := strings.Count(out, `\page`); n != 1 {
		t.Errorf("\\page count = %d, want 1", n)
	}
	if !strings.Contains(out, "S1") || !strings.Contains(out, "S2") {
		t.Errorf("expected spanning row text S1 and S2 in output: %s", out)
	}
	if strings.Contains(out, "Subject") {
		t.Errorf("Subject column should have been removed from the rendered body: %s", out)
	}
}

// TestBuild_ZeroRows confirms spec.md §4.7's edge case: an empty frame still
// produces title/header output rather than failing.
func TestBuild_ZeroRows(t *testing.T) {
	f := mustFrame(t, []string{"Column1"}, nil)
	doc := Document{
		Page:  Page{NRow: 40},
		Title: &TextComponent{Lines: []string{"Empty table"}},
		Body:  Body{ColRelWidth: []float64{1}},
	}
	out, err := Build(doc, f, strwidth.New())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(out, "Empty table") {
		t.Errorf("expected title to render for a zero-row frame: %s", out)
	}
}
