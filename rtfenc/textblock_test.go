package rtfenc

import (
	"strings"
	"testing"

	"github.com/rupor-github/rtfdoc/common"
)

func titleAttrs() TextAttrs {
	return TextAttrs{
		Font:          1,
		SizePt:        10,
		Justification: common.JustifyCenter,
		Convert:       true,
	}
}

func TestEncodeParagraph_OneGroupPerLine(t *testing.T) {
	lines := []TextLine{
		{Text: "Line one", Attrs: titleAttrs()},
		{Text: "Line two", Attrs: titleAttrs()},
	}
	out, err := EncodeParagraph(lines)
	if err != nil {
		t.Fatalf("EncodeParagraph() error = %v", err)
	}
	if strings.Count(out, `{\pard`) != 2 {
		t.Errorf("EncodeParagraph() = %q, want 2 \\pard groups", out)
	}
	if strings.Count(out, `\par}`) != 2 {
		t.Errorf("EncodeParagraph() = %q, want 2 \\par} closers", out)
	}
	if strings.Contains(out, `\line`) {
		t.Errorf("EncodeParagraph() = %q, must not join lines with \\line", out)
	}
}

func TestEncodeLine_SingleParagraph(t *testing.T) {
	lines := []TextLine{
		{Text: "Line one", Attrs: titleAttrs()},
		{Text: "Line two", Attrs: titleAttrs()},
	}
	out, err := EncodeLine(lines)
	if err != nil {
		t.Fatalf("EncodeLine() error = %v", err)
	}
	if strings.Count(out, `{\pard`) != 1 {
		t.Errorf("EncodeLine() = %q, want exactly 1 \\pard group", out)
	}
	if !strings.Contains(out, `\line `) {
		t.Errorf("EncodeLine() = %q, want \\line joining lines", out)
	}
	if strings.Count(out, `\par}`) != 1 {
		t.Errorf("EncodeLine() = %q, want exactly 1 \\par} closer", out)
	}
}

func TestEncodeLine_UsesLastLineAttrs(t *testing.T) {
	first := titleAttrs()
	first.Justification = common.JustifyLeft
	last := titleAttrs()
	last.Justification = common.JustifyRight

	out, err := EncodeLine([]TextLine{{Text: "a", Attrs: first}, {Text: "b", Attrs: last}})
	if err != nil {
		t.Fatalf("EncodeLine() error = %v", err)
	}
	if !strings.Contains(out, `\qr`) {
		t.Errorf("EncodeLine() = %q, want paragraph formatting from last line (\\qr)", out)
	}
	if strings.Contains(out, `\ql`) {
		t.Errorf("EncodeLine() = %q, must not carry first line's formatting (\\ql)", out)
	}
}

func TestEncodeLine_Empty(t *testing.T) {
	out, err := EncodeLine(nil)
	if err != nil {
		t.Fatalf("EncodeLine() error = %v", err)
	}
	if out != "" {
		t.Errorf("EncodeLine(nil) = %q, want empty", out)
	}
}

func TestEncodeHeaderFooter(t *testing.T) {
	if got := EncodeHeader("BODY"); got != `{\header BODY}` {
		t.Errorf("EncodeHeader() = %q", got)
	}
	if got := EncodeFooter("BODY"); got != `{\footer BODY}` {
		t.Errorf("EncodeFooter() = %q", got)
	}
}
