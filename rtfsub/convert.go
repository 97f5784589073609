// Package rtfsub implements the character substitutor (spec.md §4.2, C2):
// LaTeX-command-to-Unicode replacement, RTF special-character escaping, and
// the three field-code passthrough tokens used by page headers/footers.
package rtfsub

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rupor-github/rtfdoc/common"
)

// sortedCommands holds every key of latexToUnicode ordered longest-first so
// Convert always prefers a braced form like "\mathbb{R}" over a bare prefix
// match on "\mathbb".
var sortedCommands = func() []string {
	keys := make([]string, 0, len(latexToUnicode))
	for k := range latexToUnicode {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}()

// ConvertLatex replaces every recognized "\command" occurrence (longest
// match wins) with its Unicode equivalent. Unknown commands pass through
// unchanged. It is idempotent for text containing no backslash.
func ConvertLatex(text string) string {
	if !strings.ContainsRune(text, '\\') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '\\' {
			r, size := decodeRune(text[i:])
			b.WriteRune(r)
			i += size
			continue
		}

		matched := false
		for _, cmd := range sortedCommands {
			if strings.HasPrefix(text[i:], cmd) {
				b.WriteRune(latexToUnicode[cmd])
				i += len(cmd)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}

func decodeRune(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return rune(s[0]), 1
	}
	return r, size
}

var (
	superscriptPattern = regexp.MustCompile(`\^([A-Za-z0-9]+)`)
	subscriptPattern   = regexp.MustCompile(`_([A-Za-z0-9]+)`)
)

// fieldCodeReplacer expands the field-code passthrough tokens of spec.md
// §4.2. These expand regardless of text_convert, because they describe RTF
// document structure (page numbering fields), not LaTeX-to-Unicode
// substitution.
var fieldCodeReplacer = strings.NewReplacer(
	`\pagenumber`, `\chpgn`,
	`\totalpage`, `\totalpage `,
	`\pagefield`, `{\field{\*\fldinst NUMPAGES }}`,
)

// ExpandFieldCodes expands \pagenumber, \totalpage, and \pagefield into
// their RTF field control words.
func ExpandFieldCodes(text string) string {
	return fieldCodeReplacer.Replace(text)
}

// EscapeRTF escapes text for inclusion in an RTF paragraph: backslash,
// brace characters, ">="/"<=" comparison operators, "^N"/"_N" superscript
// and subscript markers, and non-ASCII code points (emitted as \uN* with a
// fallback, N being the signed 16-bit RTF convention). It validates UTF-8
// first and returns a *common.EncodingError on malformed input.
//
// The user's own backslash/brace characters are escaped before the
// operator/super/subscript control words are substituted in: those control
// words carry backslashes of their own, and escaping the text first keeps
// the later substitution pass from doubling them up.
func EscapeRTF(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", common.NewEncodingError(text, fmt.Errorf("invalid UTF-8 sequence"))
	}

	var b strings.Builder
	b.Grow(len(text) + 16)

	for _, r := range text {
		switch {
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r <= 127:
			b.WriteRune(r)
		default:
			writeUnicodeEscape(&b, r)
		}
	}
	out := b.String()

	out = strings.ReplaceAll(out, ">=", `\geq `)
	out = strings.ReplaceAll(out, "<=", `\leq `)
	out = superscriptPattern.ReplaceAllString(out, `\super $1 \nosupersub`)
	out = subscriptPattern.ReplaceAllString(out, `\sub $1 \nosupersub`)

	return out, nil
}

// writeUnicodeEscape appends the RTF \uN* escape (and ASCII fallback) for a
// non-ASCII rune, splitting code points above the BMP into a UTF-16
// surrogate pair as RTF requires.
func writeUnicodeEscape(b *strings.Builder, r rune) {
	if r > 0xFFFF {
		r -= 0x10000
		hi := 0xD800 + (r >> 10)
		lo := 0xDC00 + (r & 0x3FF)
		writeSigned16(b, hi)
		writeSigned16(b, lo)
		return
	}
	writeSigned16(b, r)
}

func writeSigned16(b *strings.Builder, r rune) {
	n := int32(r)
	if n > 32767 {
		n -= 65536
	}
	fmt.Fprintf(b, `\u%d*`, n)
}

// Convert runs the full pipeline used by C4/C5 before text is placed into an
// RTF paragraph group: LaTeX conversion (only when convert is true, per
// text_convert, spec.md §3.5), field-code expansion, then RTF escaping.
func Convert(text string, convert bool) (string, error) {
	if convert {
		text = ConvertLatex(text)
	}
	text = ExpandFieldCodes(text)
	return EscapeRTF(text)
}
