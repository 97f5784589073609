package rtfenc

import (
	"fmt"
	"strings"

	"github.com/rupor-github/rtfdoc/common"
	"github.com/rupor-github/rtfdoc/rtfsub"
)

// TextLine is one line of a text component (title, subline, page header,
// page footer) together with the attributes that apply to it. In "line"
// mode only the last line's attributes drive the shared paragraph; in
// "paragraph" mode each line carries its own.
type TextLine struct {
	Text  string
	Attrs TextAttrs
}

// EncodeParagraph emits each line as its own {\pard ... \par} group, each
// with its own paragraph-formatting controls (spec.md §4.5, "paragraph"
// mode).
func EncodeParagraph(lines []TextLine) (string, error) {
	var b strings.Builder
	for _, ln := range lines {
		text, err := rtfsub.Convert(ln.Text, ln.Attrs.Convert)
		if err != nil {
			return "", err
		}
		writeLineOpen(&b, ln.Attrs)
		b.WriteString(text)
		b.WriteString(`\par}`)
	}
	return b.String(), nil
}

// EncodeLine emits a single paragraph whose lines are joined by \line, with
// paragraph-level formatting taken from the last line's attributes (spec.md
// §4.5, "line" mode — this matches the observed r2rtf behavior).
func EncodeLine(lines []TextLine) (string, error) {
	if len(lines) == 0 {
		return "", nil
	}

	last := lines[len(lines)-1].Attrs
	var b strings.Builder
	writeLineOpen(&b, last)

	for i, ln := range lines {
		text, err := rtfsub.Convert(ln.Text, ln.Attrs.Convert)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(`\line `)
		}
		b.WriteString(text)
	}
	b.WriteString(`\par}`)
	return b.String(), nil
}

// writeLineOpen appends the shared "{\pard ... {\f... <format>" opening
// used by both paragraph and line mode, reusing the same control-word
// ordering as the row encoder's cell content group.
func writeLineOpen(b *strings.Builder, a TextAttrs) {
	fmt.Fprintf(b, `{\pard%s\fs%d{\f%d`, a.paragraphControls(), common.HalfPoints(a.SizePt), a.Font)
	if a.Color > 0 {
		fmt.Fprintf(b, `\cf%d`, a.Color)
	}
	if a.BackgroundColor > 0 {
		fmt.Fprintf(b, `\highlight%d`, a.BackgroundColor)
	}
	b.WriteString(" ")
	b.WriteString(a.formatPrefix())
}

// EncodeHeader wraps paragraph- or line-mode content in a page header group.
func EncodeHeader(body string) string {
	return `{\header ` + body + `}`
}

// EncodeFooter wraps paragraph- or line-mode content in a page footer group.
func EncodeFooter(body string) string {
	return `{\footer ` + body + `}`
}
