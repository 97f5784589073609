// Package render implements the page renderer (spec.md §4.11, C11): it
// orders the already-encoded pieces of one page (title, headers, body
// rows, footnote/source, figures) into a single RTF fragment, and carries
// the figure embed path (spec.md §6.4) since that is the one place raw
// bytes — rather than already-escaped text — enter the pipeline.
package render

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"

	"github.com/rupor-github/rtfdoc/common"
)

var blipTags = map[string]string{
	"png":  "pngblip",
	"jpg":  "jpegblip",
	"jpeg": "jpegblip",
}

// emfMagic is the first DWORD of every Enhanced Metafile record stream
// (EMR_HEADER == 1), little-endian.
var emfMagic = []byte{0x01, 0x00, 0x00, 0x00}

func sniffBlipTag(data []byte) (string, error) {
	if len(data) >= 4 && bytes.Equal(data[:4], emfMagic) {
		return "emfblip", nil
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return "", common.NewResourceError("figure", err)
	}
	if kind == filetype.Unknown {
		return "", common.NewResourceError("figure", fmt.Errorf("unrecognized figure format"))
	}
	tag, ok := blipTags[kind.Extension]
	if !ok {
		return "", common.NewResourceError("figure", fmt.Errorf("unsupported figure format %q", kind.Extension))
	}
	return tag, nil
}

// Renormalize decodes a raster figure and resizes it to the pixel
// dimensions implied by widthIn/heightIn at 96 DPI when its native pixel
// size disagrees with the requested geometry, returning PNG bytes. Figures
// that don't decode as a raster image (EMF, or anything imaging doesn't
// recognize) pass through unchanged — EMF is a vector format outside this
// re-encode path by design.
func Renormalize(data []byte, widthIn, heightIn float64) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data, nil
	}
	wantW := int(widthIn * 96)
	wantH := int(heightIn * 96)
	bounds := img.Bounds()
	if wantW <= 0 || wantH <= 0 || (bounds.Dx() == wantW && bounds.Dy() == wantH) {
		return data, nil
	}
	resized := imaging.Resize(img, wantW, wantH, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, common.NewResourceError("figure", err)
	}
	return buf.Bytes(), nil
}

// EncodeFigure emits one figure embed (spec.md §6.4): sniffs the format
// from the bytes themselves (never trusting a file extension), optionally
// renormalizes raster figures to the requested size, then emits the
// {\pict...} group wrapped in an alignment paragraph.
func EncodeFigure(data []byte, widthIn, heightIn float64, align common.Justification) (string, error) {
	tag, err := sniffBlipTag(data)
	if err != nil {
		return "", err
	}

	if tag != "emfblip" {
		normalized, err := Renormalize(data, widthIn, heightIn)
		if err != nil {
			return "", err
		}
		data = normalized
		if tag, err = sniffBlipTag(data); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `{\pard\q%s {\pict\%s\picwgoal%d\pichgoal%d `,
		align, tag, common.Twips(widthIn), common.Twips(heightIn))
	b.WriteString(strings.ToUpper(hex.EncodeToString(data)))
	b.WriteString(`}\par}`)
	return b.String(), nil
}
