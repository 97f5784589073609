// Package strwidth implements the string-width oracle (spec.md §4.1, C1):
// given a string, a font slot, and a point size, it returns the rendered
// width using the advance widths baked into the slot's TrueType font — no
// shaping or kerning beyond what the font's hmtx table provides.
//
// Grounded on golang.org/x/image/font/sfnt, the same TrueType-metrics
// dependency the teacher repo already carries (go.mod: golang.org/x/image)
// for its cover/vignette raster pipeline; reinforced by kofi-q-scribe-go's
// ttf package, which parses hmtx by hand for the same purpose — this
// package prefers the maintained library over hand-rolled table parsing.
package strwidth

import (
	"errors"
	"fmt"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/rupor-github/rtfdoc/common"
)

// ErrUnknownFont is returned when a font slot has no font loaded.
var ErrUnknownFont = errors.New("strwidth: unknown font slot")

// ErrUnsupportedUnit is returned for a unit the oracle does not recognize.
var ErrUnsupportedUnit = errors.New("strwidth: unsupported unit")

// FirstSlot and LastSlot bound the valid font-slot range (spec.md §4.1:
// "font_id ∈ 1..10"). Slot 1 is the default serif (Times-metric-compatible);
// slots 2-10 are free for sans/mono/symbol/custom faces.
const (
	FirstSlot = 1
	LastSlot  = 10
)

// DefaultDPI is used when a caller passes dpi <= 0.
const DefaultDPI = 72.0

type slot struct {
	name string
	font *sfnt.Font
}

// Oracle is a process-wide, thread-safe, read-only (after loading) cache of
// font-slot metrics. The zero value is not usable; construct with New.
type Oracle struct {
	mu    sync.RWMutex
	slots map[int]slot
}

// New returns an empty Oracle. Fonts must be loaded with LoadFont before
// Width can measure against their slot.
func New() *Oracle {
	return &Oracle{slots: make(map[int]slot)}
}

// LoadFont parses a TrueType font and registers it under the given slot
// (1..10). Loading happens once at initialization; after that Width only
// reads, so concurrent callers never race (spec.md §5).
func (o *Oracle) LoadFont(slotID int, name string, data []byte) error {
	if slotID < FirstSlot || slotID > LastSlot {
		return fmt.Errorf("%w: slot %d out of range [%d,%d]", ErrUnknownFont, slotID, FirstSlot, LastSlot)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("strwidth: parsing font for slot %d (%s): %w", slotID, name, err)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.slots[slotID] = slot{name: name, font: f}
	return nil
}

// FontName returns the display name registered for a slot, or "" if unset.
func (o *Oracle) FontName(slotID int) string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.slots[slotID].name
}

// Loaded reports whether a font has been registered for slotID.
func (o *Oracle) Loaded(slotID int) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.slots[slotID]
	return ok
}

// Width returns the rendered width of text set in the given font slot and
// point size, in the requested unit, at the given DPI (0 means 72, RTF's
// implicit convention). It is deterministic and performs no I/O.
//
// slotID out of the [1,10] range is always an error (spec.md §4.1:
// "Fails with an error kind UnknownFont for invalid slot"). A slot inside
// that range but with no font loaded is not an error: §6 carves the TTF
// metric files themselves out of scope ("only the lookup contract is
// specified"), so Width falls back to approximateWidth's per-rune
// average-advance table for any in-range slot that LoadFont has not yet
// populated, keeping the pagination pipeline runnable without a configured
// font catalog.
func (o *Oracle) Width(text string, slotID int, sizePt float64, unit common.Unit, dpi float64) (float64, error) {
	if sizePt <= 0 {
		return 0, fmt.Errorf("strwidth: size_pt must be positive, got %v", sizePt)
	}
	if slotID < FirstSlot || slotID > LastSlot {
		return 0, fmt.Errorf("%w: slot %d", ErrUnknownFont, slotID)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	o.mu.RLock()
	s, ok := o.slots[slotID]
	o.mu.RUnlock()
	if !ok {
		return convert(approximateWidthPx(text, sizePt), unit, dpi)
	}

	ppem := fixed.Int26_6(sizePt*64 + 0.5)

	var (
		buf   sfnt.Buffer
		total fixed.Int26_6
	)
	for _, r := range text {
		gi, err := s.font.GlyphIndex(&buf, r)
		if err != nil {
			return 0, fmt.Errorf("strwidth: glyph lookup for %q in slot %d: %w", r, slotID, err)
		}
		adv, err := s.font.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("strwidth: glyph advance for %q in slot %d: %w", r, slotID, err)
		}
		total += adv
	}

	widthPx := float64(total) / 64.0
	return convert(widthPx, unit, dpi)
}

// approximateWidthPx estimates text width, in the same "pixels-per-em
// equals point size" convention Width's sfnt path uses, from a fixed
// per-rune average-advance table loosely modeled on Times New Roman
// metrics: narrow letters and punctuation count for less of an em, wide
// capitals and "m"/"w" for more, everything else (including non-Latin
// scripts) falls back to a 0.5em average glyph width.
func approximateWidthPx(text string, sizePt float64) float64 {
	var total float64
	for _, r := range text {
		total += emAdvance(r) * sizePt
	}
	return total
}

func emAdvance(r rune) float64 {
	switch {
	case r == ' ':
		return 0.28
	case unicode.IsDigit(r):
		return 0.5
	case r == 'i' || r == 'l' || r == 'j' || r == 't' || r == 'f' || r == 'I' || r == '.' || r == ',' || r == '\'':
		return 0.3
	case r == 'm' || r == 'w' || r == 'M' || r == 'W':
		return 0.8
	case unicode.IsUpper(r):
		return 0.6
	case unicode.IsLower(r):
		return 0.45
	default:
		return 0.5
	}
}

// convert turns a width expressed in pixels at the given DPI into the
// requested unit.
func convert(widthPx float64, unit common.Unit, dpi float64) (float64, error) {
	inches := widthPx / dpi
	switch unit {
	case common.UnitInch:
		return inches, nil
	case common.UnitMM:
		return inches * 25.4, nil
	case common.UnitPX:
		return widthPx, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedUnit, unit)
	}
}
