// Package rtfenc implements the row/cell RTF encoder (C4) and the
// text-block RTF encoder (C5): the two leaf emitters that turn resolved
// per-cell or per-line attributes into RTF control-word sequences. Neither
// encoder looks at a data frame or a page plan; both take already-resolved
// values and are pure string builders.
package rtfenc

import (
	"fmt"
	"strings"

	"github.com/rupor-github/rtfdoc/common"
	"github.com/rupor-github/rtfdoc/rtfsub"
)

// TextAttrs carries the per-line/per-cell text formatting fields of
// spec.md §3.5, already resolved to a single value (no broadcasting left to
// do at this layer).
type TextAttrs struct {
	Font               int
	Format             string // subset of "b", "i", "u", "s"
	SizePt             float64
	Color              int // color-table index, 0 = default (black)
	BackgroundColor    int // color-table index, 0 = none
	Justification      common.Justification
	IndentFirst        int // twips
	IndentLeft         int // twips
	IndentRight        int // twips
	Space              float64
	SpaceBefore        int // twips
	SpaceAfter         int // twips
	Hyphenation        bool
	Convert            bool
	IndentRef          common.TextIndentReference
}

// formatPrefix returns the RTF control-word prefix (e.g. "\b\i ") for the
// "b,i,u,s" format string, in a stable b/i/u/s order regardless of input
// order.
func (a TextAttrs) formatPrefix() string {
	var b strings.Builder
	if strings.ContainsRune(a.Format, 'b') {
		b.WriteString(`\b`)
	}
	if strings.ContainsRune(a.Format, 'i') {
		b.WriteString(`\i`)
	}
	if strings.ContainsRune(a.Format, 'u') {
		b.WriteString(`\ul`)
	}
	if strings.ContainsRune(a.Format, 's') {
		b.WriteString(`\strike`)
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	return b.String()
}

// paragraphControls emits the \pard group's paragraph-formatting controls,
// not including the opening "{\pard" token itself or the trailing content.
func (a TextAttrs) paragraphControls() string {
	hyph := 0
	if a.Hyphenation {
		hyph = 1
	}
	return fmt.Sprintf(`\hyphpar%d\sb%d\sa%d\fi%d\li%d\ri%d\q%s`,
		hyph, a.SpaceBefore, a.SpaceAfter, a.IndentFirst, a.IndentLeft, a.IndentRight,
		a.Justification)
}

// BorderSpec is one side's border (style + width in twips + color index).
type BorderSpec struct {
	Style common.BorderStyle
	Width int
	Color int
}

// controlWord returns the \clbrdr<side> group for this border, or "" when
// the style is empty (no border painted on this side).
func (b BorderSpec) controlWord(side string) string {
	word := b.Style.RTFControlWord()
	if word == "" {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `\clbrdr%s\%s\brdrw%d`, side, word, b.Width)
	if b.Color > 0 {
		fmt.Fprintf(&sb, `\brdrcf%d`, b.Color)
	}
	return sb.String()
}

// CellAttrs carries one cell's fully-resolved attributes: its text
// formatting, its four border specs, its vertical alignment, height, and
// text content (already LaTeX-converted and RTF-escaped by the caller is
// NOT assumed — Encode* functions run rtfsub.Convert themselves).
type CellAttrs struct {
	Text         string
	TextAttrs    TextAttrs
	BorderTop    BorderSpec
	BorderBottom BorderSpec
	BorderLeft   BorderSpec
	BorderRight  BorderSpec
	VerticalJust common.VerticalJustification
	HeightIn     float64 // inches
}
