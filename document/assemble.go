package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rupor-github/rtfdoc/common"
)

// FontTableEntry names one font-table slot (spec.md §4.1: slot 1 is the
// default serif).
type FontTableEntry struct {
	Slot   int
	Family string // RTF font-family control word, e.g. "froman", "fswiss", "fmodern"
	Name   string
}

// DefaultFontTable is the minimal slot 1..4 table every document gets
// unless the caller supplies its own (spec.md §6.2 example: "Times New
// Roman" in slot 0).
var DefaultFontTable = []FontTableEntry{
	{Slot: 0, Family: "froman", Name: "Times New Roman"},
	{Slot: 1, Family: "fswiss", Name: "Arial"},
	{Slot: 2, Family: "fmodern", Name: "Courier New"},
	{Slot: 3, Family: "fswiss", Name: "Symbol"},
}

func emitFontTable(entries []FontTableEntry) string {
	var b strings.Builder
	b.WriteString(`{\fonttbl`)
	for _, e := range entries {
		fmt.Fprintf(&b, `{\f%d\%s\fcharset1\fprq2 %s;}`, e.Slot, e.Family, e.Name)
	}
	b.WriteString(`}`)
	return b.String()
}

// colorPalette is the fixed name->RGB palette color names resolve against
// (spec.md §4.12: "built from every referenced color name resolved against
// a fixed palette").
var colorPalette = map[string][3]int{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"gray":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
}

// ResolveColorIndex returns the 1-based color-table index for a palette
// color name, registering it in order of first use within names.
func ResolveColorIndex(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i + 1
		}
	}
	return 0
}

// emitColorTable emits {\colortbl;\red..\green..\blue..; ...} for the
// given ordered color names; index 0 is always the leading bare ";"
// (default/automatic color per the RTF convention).
func emitColorTable(names []string) (string, error) {
	var b strings.Builder
	b.WriteString(`{\colortbl;`)
	for _, name := range names {
		rgb, ok := colorPalette[name]
		if !ok {
			return "", NewValidationError("color", fmt.Sprintf("unknown color name %q", name))
		}
		fmt.Fprintf(&b, `\red%d\green%d\blue%d;`, rgb[0], rgb[1], rgb[2])
	}
	b.WriteString(`}`)
	return b.String(), nil
}

// SortedColorNames returns names deduplicated and sorted, for deterministic
// color-table emission (spec.md §8 property 8: byte determinism).
func SortedColorNames(names map[string]bool) []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Preamble holds everything Assemble needs beyond the already-rendered
// page bodies: geometry, font/color tables, and header/footer groups.
type Preamble struct {
	Page       Page
	FontTable  []FontTableEntry
	ColorNames []string // only emitted when Page.UseColor
	Header     string    // pre-encoded {\header ...} group, or ""
	Footer     string    // pre-encoded {\footer ...} group, or ""
}

// Geometry emits \paperw/\paperh[/\landscape] + the six margin controls,
// the block reissued after every page-break token (spec.md §6.3).
func (p Preamble) Geometry() string {
	width, height := p.Page.ResolvedWidthHeight()
	var b strings.Builder
	fmt.Fprintf(&b, `\paperw%d\paperh%d`, common.Twips(width), common.Twips(height))
	if p.Page.Orientation == common.OrientationLandscape {
		b.WriteString(`\landscape`)
	}
	m := p.Page.Margin
	fmt.Fprintf(&b, `\margl%d\margr%d\margt%d\margb%d\headery%d\footery%d`,
		common.Twips(m[0]), common.Twips(m[1]), common.Twips(m[2]), common.Twips(m[3]), common.Twips(m[4]), common.Twips(m[5]))
	return b.String()
}

// Assemble emits the fixed prologue (spec.md §4.12), the geometry block,
// optional header/footer groups, the concatenated page bodies, and the
// closing brace.
func Assemble(pre Preamble, pageBodies []string) (string, error) {
	fonts := pre.FontTable
	if len(fonts) == 0 {
		fonts = DefaultFontTable
	}

	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0\deflang1033`)
	b.WriteString(emitFontTable(fonts))

	if pre.Page.UseColor && len(pre.ColorNames) > 0 {
		colors, err := emitColorTable(pre.ColorNames)
		if err != nil {
			return "", err
		}
		b.WriteString(colors)
	}

	b.WriteString(pre.Header)
	b.WriteString(pre.Footer)
	b.WriteString(pre.Geometry())

	for _, body := range pageBodies {
		b.WriteString(body)
	}

	b.WriteString("\n\n}")
	return b.String(), nil
}
