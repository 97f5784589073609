package tableattrs

import (
	"github.com/rupor-github/rtfdoc/broadcast"
	"github.com/rupor-github/rtfdoc/common"
	"github.com/rupor-github/rtfdoc/rtfenc"
)

// Spec holds whatever per-cell attribute overrides a caller supplied. Every
// field is optional (nil means "fall back to the component's Defaults").
// Each non-nil field is a broadcast.Value, so callers may pass a scalar, a
// 1-D sequence, or a full (R,C) matrix for any attribute (spec.md §3.6:
// "all per-cell attributes may be provided as scalar / 1-D / 2-D").
type Spec struct {
	BorderTop    *broadcast.Value[common.BorderStyle]
	BorderBottom *broadcast.Value[common.BorderStyle]
	BorderLeft   *broadcast.Value[common.BorderStyle]
	BorderRight  *broadcast.Value[common.BorderStyle]
	BorderColor  *broadcast.Value[int] // shared color index for all four sides
	BorderWidth  *broadcast.Value[int] // twips

	CellVerticalJustification *broadcast.Value[common.VerticalJustification]
	TextJustification         *broadcast.Value[common.Justification]
	CellHeightIn              *broadcast.Value[float64]

	Font            *broadcast.Value[int]
	Format          *broadcast.Value[string]
	SizePt          *broadcast.Value[float64]
	Color           *broadcast.Value[int]
	BackgroundColor *broadcast.Value[int]
	IndentFirst     *broadcast.Value[int]
	IndentLeft      *broadcast.Value[int]
	IndentRight     *broadcast.Value[int]
	Space           *broadcast.Value[float64]
	SpaceBefore     *broadcast.Value[int]
	SpaceAfter      *broadcast.Value[int]
	Hyphenation     *broadcast.Value[bool]
	Convert         *broadcast.Value[bool]
}

// Resolve expands Defaults merged with Spec into a full (rows, cols) matrix
// of rtfenc.CellAttrs. Text is left as the empty string; callers fill it in
// from the data frame cell-by-cell. This is the "per-cell attribute matrix"
// spec.md §4.6 describes; border_first/border_last (row-specific, not
// per-cell) are applied afterward by the border resolver (C9), not here.
func Resolve(rows, cols int, d Defaults, s Spec) [][]rtfenc.CellAttrs {
	borderTop := orBorder(s.BorderTop, d.BorderTop)
	borderBottom := orBorder(s.BorderBottom, d.BorderBottom)
	borderLeft := orBorder(s.BorderLeft, d.BorderLeft)
	borderRight := orBorder(s.BorderRight, d.BorderRight)
	borderColor := orInt(s.BorderColor, 0)
	borderWidth := orInt(s.BorderWidth, d.BorderWidth)

	vjust := orVJust(s.CellVerticalJustification, d.CellVerticalJustification)
	tjust := orJust(s.TextJustification, d.TextJustification)
	height := orFloat(s.CellHeightIn, d.CellHeightIn)

	font := orInt(s.Font, d.Font)
	format := orString(s.Format, "")
	size := orFloat(s.SizePt, d.SizePt)
	color := orInt(s.Color, 0)
	bg := orInt(s.BackgroundColor, 0)
	indentFirst := orInt(s.IndentFirst, 0)
	indentLeft := orInt(s.IndentLeft, 0)
	indentRight := orInt(s.IndentRight, 0)
	space := orFloat(s.Space, 1)
	spaceBefore := orInt(s.SpaceBefore, 0)
	spaceAfter := orInt(s.SpaceAfter, 0)
	hyphenation := orBool(s.Hyphenation, d.Hyphenation)
	convert := orBool(s.Convert, d.Convert)

	out := make([][]rtfenc.CellAttrs, rows)
	for r := 0; r < rows; r++ {
		row := make([]rtfenc.CellAttrs, cols)
		for c := 0; c < cols; c++ {
			row[c] = rtfenc.CellAttrs{
				TextAttrs: rtfenc.TextAttrs{
					Font:            font.ILoc(r, c),
					Format:          format.ILoc(r, c),
					SizePt:          size.ILoc(r, c),
					Color:           color.ILoc(r, c),
					BackgroundColor: bg.ILoc(r, c),
					Justification:   tjust.ILoc(r, c),
					IndentFirst:     indentFirst.ILoc(r, c),
					IndentLeft:      indentLeft.ILoc(r, c),
					IndentRight:     indentRight.ILoc(r, c),
					Space:           space.ILoc(r, c),
					SpaceBefore:     spaceBefore.ILoc(r, c),
					SpaceAfter:      spaceAfter.ILoc(r, c),
					Hyphenation:     hyphenation.ILoc(r, c),
					Convert:         convert.ILoc(r, c),
				},
				BorderTop:    rtfenc.BorderSpec{Style: borderTop.ILoc(r, c), Width: borderWidth.ILoc(r, c), Color: borderColor.ILoc(r, c)},
				BorderBottom: rtfenc.BorderSpec{Style: borderBottom.ILoc(r, c), Width: borderWidth.ILoc(r, c), Color: borderColor.ILoc(r, c)},
				BorderLeft:   rtfenc.BorderSpec{Style: borderLeft.ILoc(r, c), Width: borderWidth.ILoc(r, c), Color: borderColor.ILoc(r, c)},
				BorderRight:  rtfenc.BorderSpec{Style: borderRight.ILoc(r, c), Width: borderWidth.ILoc(r, c), Color: borderColor.ILoc(r, c)},
				VerticalJust: vjust.ILoc(r, c),
				HeightIn:     height.ILoc(r, c),
			}
		}
		out[r] = row
	}
	return out
}

func orBorder(v *broadcast.Value[common.BorderStyle], def common.BorderStyle) *broadcast.Value[common.BorderStyle] {
	if v != nil {
		return v
	}
	return broadcast.Scalar(def)
}

func orVJust(v *broadcast.Value[common.VerticalJustification], def common.VerticalJustification) *broadcast.Value[common.VerticalJustification] {
	if v != nil {
		return v
	}
	return broadcast.Scalar(def)
}

func orJust(v *broadcast.Value[common.Justification], def common.Justification) *broadcast.Value[common.Justification] {
	if v != nil {
		return v
	}
	return broadcast.Scalar(def)
}

func orInt(v *broadcast.Value[int], def int) *broadcast.Value[int] {
	if v != nil {
		return v
	}
	return broadcast.Scalar(def)
}

func orFloat(v *broadcast.Value[float64], def float64) *broadcast.Value[float64] {
	if v != nil {
		return v
	}
	return broadcast.Scalar(def)
}

func orString(v *broadcast.Value[string], def string) *broadcast.Value[string] {
	if v != nil {
		return v
	}
	return broadcast.Scalar(def)
}

func orBool(v *broadcast.Value[bool], def bool) *broadcast.Value[bool] {
	if v != nil {
		return v
	}
	return broadcast.Scalar(def)
}
