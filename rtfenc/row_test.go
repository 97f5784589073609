package rtfenc

import (
	"strings"
	"testing"

	"github.com/rupor-github/rtfdoc/common"
)

func basicCell(text string) CellAttrs {
	return CellAttrs{
		Text: text,
		TextAttrs: TextAttrs{
			Font:          1,
			SizePt:        9,
			Justification: common.JustifyCenter,
			Convert:       true,
		},
		BorderTop:    BorderSpec{Style: common.BorderStyleSingle, Width: 15},
		BorderBottom: BorderSpec{Style: common.BorderStyleSingle, Width: 15},
		BorderLeft:   BorderSpec{Style: common.BorderStyleSingle, Width: 15},
		BorderRight:  BorderSpec{Style: common.BorderStyleSingle, Width: 15},
		VerticalJust: common.VJustifyCenter,
		HeightIn:     0.2,
	}
}

func TestEncodeRow_Basic(t *testing.T) {
	cells := []CellAttrs{basicCell("A"), basicCell("B")}
	out, err := EncodeRow(cells, []float64{1.0, 2.0}, common.JustifyCenter)
	if err != nil {
		t.Fatalf("EncodeRow() error = %v", err)
	}
	for _, want := range []string{
		`\trowd`, `\trgaph144`, `\trleft0`, `\trqc`,
		`\clbrdrt\brdrs\brdrw15`, `\clbrdrb\brdrs\brdrw15`,
		`\clbrdrl\brdrs\brdrw15`, `\clbrdrr\brdrs\brdrw15`,
		`\clvertalc`, `\cellx1440`, `\cellx2880`,
		`{\pard`, `\fs18`, `{\f1`, `\intbl\cell}`, `\intbl\row\pard`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("EncodeRow() = %q, want to contain %q", out, want)
		}
	}
}

func TestEncodeRow_MismatchedLengths(t *testing.T) {
	_, err := EncodeRow([]CellAttrs{basicCell("A")}, []float64{1.0, 2.0}, common.JustifyLeft)
	if err == nil {
		t.Error("EncodeRow() with mismatched lengths should error")
	}
}

func TestEncodeRow_Empty(t *testing.T) {
	_, err := EncodeRow(nil, nil, common.JustifyLeft)
	if err == nil {
		t.Error("EncodeRow() with no cells should error")
	}
}

func TestEncodeRow_Deterministic(t *testing.T) {
	cells := []CellAttrs{basicCell("A"), basicCell("B")}
	a, err1 := EncodeRow(cells, []float64{1.0, 2.0}, common.JustifyCenter)
	b, err2 := EncodeRow(cells, []float64{1.0, 2.0}, common.JustifyCenter)
	if err1 != nil || err2 != nil {
		t.Fatalf("EncodeRow() errors = %v, %v", err1, err2)
	}
	if a != b {
		t.Errorf("EncodeRow() not deterministic: %q != %q", a, b)
	}
}

func TestEncodeRow_EmptyBorderOmitted(t *testing.T) {
	c := basicCell("A")
	c.BorderTop = BorderSpec{}
	out, err := EncodeRow([]CellAttrs{c}, []float64{1.0}, common.JustifyLeft)
	if err != nil {
		t.Fatalf("EncodeRow() error = %v", err)
	}
	if strings.Contains(out, `\clbrdrt`) {
		t.Errorf("EncodeRow() = %q, must omit \\clbrdrt for empty border style", out)
	}
}

func TestEncodeRow_FormatPrefixAndColor(t *testing.T) {
	c := basicCell("bold red")
	c.TextAttrs.Format = "b"
	c.TextAttrs.Color = 2
	c.TextAttrs.BackgroundColor = 3
	out, err := EncodeRow([]CellAttrs{c}, []float64{1.0}, common.JustifyLeft)
	if err != nil {
		t.Fatalf("EncodeRow() error = %v", err)
	}
	for _, want := range []string{`\cf2`, `\highlight3`, `\b `} {
		if !strings.Contains(out, want) {
			t.Errorf("EncodeRow() = %q, want to contain %q", out, want)
		}
	}
}

func TestEncodeRow_InvalidUTF8(t *testing.T) {
	c := basicCell(string([]byte{0xff, 0xfe}))
	_, err := EncodeRow([]CellAttrs{c}, []float64{1.0}, common.JustifyLeft)
	if err == nil {
		t.Error("EncodeRow() with invalid UTF-8 cell text should error")
	}
}
