package rtfenc

import (
	"fmt"
	"strings"

	"github.com/rupor-github/rtfdoc/common"
	"github.com/rupor-github/rtfdoc/rtfsub"
)

// EncodeRow emits one physical row (spec.md §4.4): row open, one
// cell-definition group per cell, one paragraph-content group per cell,
// row close. colWidthsIn are the cumulative, left-to-right column
// boundaries in inches (colWidthsIn[j] is the right edge of cell j); len
// must equal len(cells). rowJust is the row-level justification used by
// \trq.
//
// Output is byte-reproducible for a given input: control words are always
// emitted in the same order.
func EncodeRow(cells []CellAttrs, colWidthsIn []float64, rowJust common.Justification) (string, error) {
	if len(cells) != len(colWidthsIn) {
		return "", fmt.Errorf("rtfenc: EncodeRow: %d cells but %d column widths", len(cells), len(colWidthsIn))
	}
	if len(cells) == 0 {
		return "", fmt.Errorf("rtfenc: EncodeRow: no cells")
	}

	height := cells[0].HeightIn
	var b strings.Builder

	fmt.Fprintf(&b, `\trowd\trgaph%d\trleft0\trq%s`, common.Twips(height/2), rowJust)

	for j, c := range cells {
		writeCellDef(&b, c, colWidthsIn[j])
	}

	for _, c := range cells {
		if err := writeCellContent(&b, c); err != nil {
			return "", err
		}
	}

	b.WriteString(`\intbl\row\pard`)
	return b.String(), nil
}

// writeCellDef appends one cell's border/vertical-alignment/\cellx group.
func writeCellDef(b *strings.Builder, c CellAttrs, rightEdgeIn float64) {
	if s := c.BorderTop.controlWord("t"); s != "" {
		b.WriteString(s)
	}
	if s := c.BorderBottom.controlWord("b"); s != "" {
		b.WriteString(s)
	}
	if s := c.BorderLeft.controlWord("l"); s != "" {
		b.WriteString(s)
	}
	if s := c.BorderRight.controlWord("r"); s != "" {
		b.WriteString(s)
	}
	b.WriteString(`\` + c.VerticalJust.RTFControlWord())
	fmt.Fprintf(b, `\cellx%d`, common.Twips(rightEdgeIn))
}

// writeCellContent appends one cell's {\pard ... \intbl\cell} content group.
func writeCellContent(b *strings.Builder, c CellAttrs) error {
	text, err := rtfsub.Convert(c.Text, c.TextAttrs.Convert)
	if err != nil {
		return err
	}

	a := c.TextAttrs
	fmt.Fprintf(b, `{\pard%s\fs%d{\f%d`, a.paragraphControls(), common.HalfPoints(a.SizePt), a.Font)
	if a.Color > 0 {
		fmt.Fprintf(b, `\cf%d`, a.Color)
	}
	if a.BackgroundColor > 0 {
		fmt.Fprintf(b, `\highlight%d`, a.BackgroundColor)
	}
	b.WriteString(" ")
	b.WriteString(a.formatPrefix())
	b.WriteString(text)
	b.WriteString(`}\intbl\cell}`)
	return nil
}
