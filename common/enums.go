// Package common holds small value types shared across every layer of the
// engine: border/justification/orientation enums, the RTF unit conversions,
// and the sentinel value the grouping pipeline filters out of rendered text.
//
// Enum methods here are hand-written in the shape github.com/abice/go-enum
// would generate (String/Parse/IsValid); the generator itself is not run as
// part of this build.
package common

import "fmt"

// BorderStyle names one of the RTF border rendering styles supported by the
// engine (spec.md §6.2).
type BorderStyle int

const (
	BorderStyleEmpty BorderStyle = iota
	BorderStyleSingle
	BorderStyleDouble
	BorderStyleThick
	BorderStyleDot
	BorderStyleDash
	BorderStyleDotDash
	BorderStyleHairline
)

var borderStyleNames = [...]string{
	BorderStyleEmpty:    "empty",
	BorderStyleSingle:   "single",
	BorderStyleDouble:   "double",
	BorderStyleThick:    "thick",
	BorderStyleDot:      "dot",
	BorderStyleDash:     "dash",
	BorderStyleDotDash:  "dot-dash",
	BorderStyleHairline: "hairline",
}

// rtfControlWords maps a border style to the RTF control word used in
// \clbrdr<side>\<word>.
var rtfControlWords = [...]string{
	BorderStyleEmpty:    "",
	BorderStyleSingle:   "brdrs",
	BorderStyleDouble:   "brdrdb",
	BorderStyleThick:    "brdrth",
	BorderStyleDot:      "brdrdot",
	BorderStyleDash:     "brdrdash",
	BorderStyleDotDash:  "brdrdashd",
	BorderStyleHairline: "brdrhair",
}

func (b BorderStyle) String() string {
	if b < 0 || int(b) >= len(borderStyleNames) {
		return fmt.Sprintf("BorderStyle(%d)", int(b))
	}
	return borderStyleNames[b]
}

// RTFControlWord returns the bare RTF control word (without the backslash)
// for this border style, or "" when the style paints no border at all.
func (b BorderStyle) RTFControlWord() string {
	if b < 0 || int(b) >= len(rtfControlWords) {
		return ""
	}
	return rtfControlWords[b]
}

// ParseBorderStyle parses a border style name. It returns an error wrapping
// ErrInvalidEnum for unrecognized names.
func ParseBorderStyle(name string) (BorderStyle, error) {
	for i, n := range borderStyleNames {
		if n == name {
			return BorderStyle(i), nil
		}
	}
	if name == "" {
		return BorderStyleEmpty, nil
	}
	return 0, fmt.Errorf("%w: border style %q", ErrInvalidEnum, name)
}

// Justification is a horizontal text/cell justification code.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
	JustifyFull
)

var justificationCodes = [...]string{
	JustifyLeft:   "l",
	JustifyCenter: "c",
	JustifyRight:  "r",
	JustifyFull:   "j",
}

func (j Justification) String() string {
	if j < 0 || int(j) >= len(justificationCodes) {
		return fmt.Sprintf("Justification(%d)", int(j))
	}
	return justificationCodes[j]
}

// ParseJustification parses one of "l", "c", "r", "j".
func ParseJustification(code string) (Justification, error) {
	for i, c := range justificationCodes {
		if c == code {
			return Justification(i), nil
		}
	}
	return 0, fmt.Errorf("%w: justification %q", ErrInvalidEnum, code)
}

// VerticalJustification is a cell's vertical alignment.
type VerticalJustification int

const (
	VJustifyTop VerticalJustification = iota
	VJustifyCenter
	VJustifyBottom
)

var verticalJustificationNames = [...]string{
	VJustifyTop:    "top",
	VJustifyCenter: "center",
	VJustifyBottom: "bottom",
}

var verticalJustificationControlWords = [...]string{
	VJustifyTop:    "clvertalt",
	VJustifyCenter: "clvertalc",
	VJustifyBottom: "clvertalb",
}

func (v VerticalJustification) String() string {
	if v < 0 || int(v) >= len(verticalJustificationNames) {
		return fmt.Sprintf("VerticalJustification(%d)", int(v))
	}
	return verticalJustificationNames[v]
}

// RTFControlWord returns the \clvertal* control word for this alignment.
func (v VerticalJustification) RTFControlWord() string {
	if v < 0 || int(v) >= len(verticalJustificationControlWords) {
		return verticalJustificationControlWords[VJustifyCenter]
	}
	return verticalJustificationControlWords[v]
}

// ParseVerticalJustification parses one of "top", "center", "bottom".
func ParseVerticalJustification(name string) (VerticalJustification, error) {
	for i, n := range verticalJustificationNames {
		if n == name {
			return VerticalJustification(i), nil
		}
	}
	return 0, fmt.Errorf("%w: vertical justification %q", ErrInvalidEnum, name)
}

// Orientation is the page orientation.
type Orientation int

const (
	OrientationPortrait Orientation = iota
	OrientationLandscape
)

func (o Orientation) String() string {
	if o == OrientationLandscape {
		return "landscape"
	}
	return "portrait"
}

// ParseOrientation parses "portrait" or "landscape".
func ParseOrientation(name string) (Orientation, error) {
	switch name {
	case "", "portrait":
		return OrientationPortrait, nil
	case "landscape":
		return OrientationLandscape, nil
	default:
		return 0, fmt.Errorf("%w: orientation %q", ErrInvalidEnum, name)
	}
}

// PagePlacement describes when a title/footnote/source component renders
// relative to the pages of a multi-page table (spec.md §3.2).
type PagePlacement int

const (
	PlacementAll PagePlacement = iota
	PlacementFirst
	PlacementLast
)

var pagePlacementNames = [...]string{
	PlacementAll:   "all",
	PlacementFirst: "first",
	PlacementLast:  "last",
}

func (p PagePlacement) String() string {
	if p < 0 || int(p) >= len(pagePlacementNames) {
		return fmt.Sprintf("PagePlacement(%d)", int(p))
	}
	return pagePlacementNames[p]
}

// ParsePagePlacement parses one of "first", "last", "all".
func ParsePagePlacement(name string) (PagePlacement, error) {
	for i, n := range pagePlacementNames {
		if n == name {
			return PagePlacement(i), nil
		}
	}
	return 0, fmt.Errorf("%w: page placement %q", ErrInvalidEnum, name)
}

// PageByRowLocation controls where page_by spanning-row text is drawn
// (spec.md §3.4 `pageby_row`).
type PageByRowLocation int

const (
	PageByRowColumn PageByRowLocation = iota
	PageByRowFirstRow
)

func (p PageByRowLocation) String() string {
	if p == PageByRowFirstRow {
		return "first_row"
	}
	return "column"
}

// ParsePageByRowLocation parses one of "column", "first_row".
func ParsePageByRowLocation(name string) (PageByRowLocation, error) {
	switch name {
	case "", "column":
		return PageByRowColumn, nil
	case "first_row":
		return PageByRowFirstRow, nil
	default:
		return 0, fmt.Errorf("%w: pageby_row %q", ErrInvalidEnum, name)
	}
}

// TextIndentReference selects whether a text component's indent is measured
// from the page margin or from the table band (spec.md §3.3).
type TextIndentReference int

const (
	IndentReferenceTable TextIndentReference = iota
	IndentReferencePage
)

func (t TextIndentReference) String() string {
	if t == IndentReferencePage {
		return "page"
	}
	return "table"
}

// ParseTextIndentReference parses one of "page", "table".
func ParseTextIndentReference(name string) (TextIndentReference, error) {
	switch name {
	case "", "table":
		return IndentReferenceTable, nil
	case "page":
		return IndentReferencePage, nil
	default:
		return 0, fmt.Errorf("%w: text_indent_reference %q", ErrInvalidEnum, name)
	}
}

// Unit is a physical length unit accepted by the string-width oracle.
type Unit int

const (
	UnitInch Unit = iota
	UnitMM
	UnitPX
)

func (u Unit) String() string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitPX:
		return "px"
	default:
		return "in"
	}
}

// ParseUnit parses one of "in", "mm", "px".
func ParseUnit(name string) (Unit, error) {
	switch name {
	case "", "in":
		return UnitInch, nil
	case "mm":
		return UnitMM, nil
	case "px":
		return UnitPX, nil
	default:
		return 0, fmt.Errorf("%w: unit %q", ErrInvalidEnum, name)
	}
}

// ErrInvalidEnum is wrapped by every Parse* function in this package when
// given an unrecognized name.
var ErrInvalidEnum = fmt.Errorf("invalid enum value")

// SentinelValue is the divider placeholder the grouping pipeline drops from
// rendered group/spanning-row/subline text (spec.md §4.8, GLOSSARY).
const SentinelValue = "-----"

// TwipsPerInch is the number of RTF twips in one inch.
const TwipsPerInch = 1440

// Twips converts inches to the RTF twips unit, rounding to the nearest twip.
func Twips(inches float64) int {
	return int(inches*TwipsPerInch + 0.5)
}

// HalfPoints converts a point size to RTF's half-point font-size unit.
func HalfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}
