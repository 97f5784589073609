package document

import (
	"errors"
	"testing"

	"github.com/rupor-github/rtfdoc/common"
)

func validDoc() Document {
	return Document{
		Page: Page{NRow: 40},
		Body: Body{},
	}
}

func TestValidate_NRowBelowOne(t *testing.T) {
	d := validDoc()
	d.Page.NRow = 0
	var ve *ValidationError
	if err := d.Validate(5); !errors.As(err, &ve) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
}

func TestValidate_NewPageRequiresPageBy(t *testing.T) {
	d := validDoc()
	d.Body.NewPage = true
	if err := d.Validate(5); err == nil {
		t.Error("Validate() should reject new_page=true with empty page_by")
	}
	d.Body.PageBy = []string{"region"}
	if err := d.Validate(5); err != nil {
		t.Errorf("Validate() with page_by set should pass, got %v", err)
	}
}

func TestValidate_ColRelWidthLength(t *testing.T) {
	d := validDoc()
	d.Body.PageBy = []string{"region"}
	d.Body.ColRelWidth = []float64{1, 1, 1}
	if err := d.Validate(5); err == nil {
		t.Error("Validate() should reject col_rel_width length mismatch after column removal")
	}
	d.Body.ColRelWidth = []float64{1, 1, 1, 1}
	if err := d.Validate(5); err != nil {
		t.Errorf("Validate() with matching col_rel_width should pass, got %v", err)
	}
}

func TestPage_ResolvedWidthHeight_Defaults(t *testing.T) {
	p := Page{}
	w, h := p.ResolvedWidthHeight()
	if w != 8.5 || h != 11.0 {
		t.Errorf("ResolvedWidthHeight() = (%v,%v), want (8.5,11.0)", w, h)
	}
}

func TestPage_ResolvedWidthHeight_Landscape(t *testing.T) {
	p := Page{Orientation: common.OrientationLandscape}
	w, h := p.ResolvedWidthHeight()
	if w != 11.0 || h != 8.5 {
		t.Errorf("ResolvedWidthHeight() landscape = (%v,%v), want (11.0,8.5)", w, h)
	}
}

func TestPage_ResolvedColWidth(t *testing.T) {
	p := Page{Margin: [6]float64{1, 1, 1, 1, 0.5, 0.5}}
	if got := p.ResolvedColWidth(); got != 6.5 {
		t.Errorf("ResolvedColWidth() = %v, want 6.5", got)
	}
	p.ColWidthIn = 5
	if got := p.ResolvedColWidth(); got != 5 {
		t.Errorf("ResolvedColWidth() explicit = %v, want 5", got)
	}
}
