package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/gosimple/slug"

	"github.com/rupor-github/rtfdoc/common"
	"github.com/rupor-github/rtfdoc/config"
	"github.com/rupor-github/rtfdoc/document"
	"github.com/rupor-github/rtfdoc/internal/frame"
)

// renderRequest is the JSON front-end to document.Document + the data frame
// document.Build consumes (spec.md §3.2, §6.1). It covers the fields a
// caller typically sets from a configuration or generation script; the
// per-cell broadcast attribute overrides (tableattrs.Spec) are a Go-API-only
// surface — a caller needing those builds a document.Document directly
// instead of going through this CLI front-end.
type renderRequest struct {
	Page         pageJSON        `json:"page"`
	Title        *textJSON       `json:"title,omitempty"`
	Subline      *textJSON       `json:"subline,omitempty"`
	PageHeader   *textJSON       `json:"page_header,omitempty"`
	PageFooter   *textJSON       `json:"page_footer,omitempty"`
	ColumnHeader []textJSON      `json:"column_header,omitempty"`
	Body         bodyJSON        `json:"body"`
	Footnote     *tableTextJSON  `json:"footnote,omitempty"`
	Source       *tableTextJSON  `json:"source,omitempty"`
	Figure       *figureJSON     `json:"figure,omitempty"`
	Data         dataFrameJSON   `json:"data"`
}

type pageJSON struct {
	Orientation  string     `json:"orientation"`
	WidthIn      float64    `json:"width_in"`
	HeightIn     float64    `json:"height_in"`
	Margin       [6]float64 `json:"margin"`
	NRow         int        `json:"nrow"`
	ColWidthIn   float64    `json:"col_width_in"`
	BorderFirst  string     `json:"border_first"`
	BorderLast   string     `json:"border_last"`
	PageTitle    string     `json:"page_title"`
	PageFootnote string     `json:"page_footnote"`
	PageSource   string     `json:"page_source"`
	UseColor     bool       `json:"use_color"`
}

type textJSON struct {
	Lines []string `json:"lines"`
}

type tableTextJSON struct {
	Lines   []string `json:"lines"`
	AsTable bool     `json:"as_table"`
}

type bodyJSON struct {
	ColRelWidth  []float64 `json:"col_rel_width,omitempty"`
	AsColHeader  bool      `json:"as_colheader"`
	GroupBy      []string  `json:"group_by,omitempty"`
	PageBy       []string  `json:"page_by,omitempty"`
	NewPage      bool      `json:"new_page"`
	PagebyHeader bool      `json:"pageby_header"`
	PagebyRow    string    `json:"pageby_row"`
	SublineBy    []string  `json:"subline_by,omitempty"`
	LastRow      bool      `json:"last_row"`
}

type figureJSON struct {
	Paths     []string  `json:"paths"`
	WidthIn   []float64 `json:"width_in"`
	HeightIn  []float64 `json:"height_in"`
	Alignment string    `json:"alignment"`
	Position  string    `json:"position"`
}

type dataFrameJSON struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// loadRenderRequest reads and parses a render request file.
func loadRenderRequest(path string) (*renderRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read render request %q: %w", path, err)
	}
	var req renderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("unable to parse render request %q: %w", path, err)
	}
	return &req, nil
}

// toDocument translates the JSON request into a document.Document and its
// data frame, resolving every enum field via the common package's Parse*
// helpers so an unrecognized name surfaces as a *common.ValidationError
// wrapped in context, not a silent default.
func (req *renderRequest) toDocument() (document.Document, frame.Frame, error) {
	var doc document.Document

	orientation, err := common.ParseOrientation(req.Page.Orientation)
	if err != nil {
		return doc, nil, fmt.Errorf("page.orientation: %w", err)
	}
	borderFirst, err := common.ParseBorderStyle(req.Page.BorderFirst)
	if err != nil {
		return doc, nil, fmt.Errorf("page.border_first: %w", err)
	}
	borderLast, err := common.ParseBorderStyle(req.Page.BorderLast)
	if err != nil {
		return doc, nil, fmt.Errorf("page.border_last: %w", err)
	}
	pageTitle, err := common.ParsePagePlacement(req.Page.PageTitle)
	if err != nil {
		return doc, nil, fmt.Errorf("page.page_title: %w", err)
	}
	pageFootnote, err := common.ParsePagePlacement(req.Page.PageFootnote)
	if err != nil {
		return doc, nil, fmt.Errorf("page.page_footnote: %w", err)
	}
	pageSource, err := common.ParsePagePlacement(req.Page.PageSource)
	if err != nil {
		return doc, nil, fmt.Errorf("page.page_source: %w", err)
	}

	doc.Page = document.Page{
		Orientation:  orientation,
		WidthIn:      req.Page.WidthIn,
		HeightIn:     req.Page.HeightIn,
		Margin:       req.Page.Margin,
		NRow:         req.Page.NRow,
		ColWidthIn:   req.Page.ColWidthIn,
		BorderFirst:  borderFirst,
		BorderLast:   borderLast,
		PageTitle:    pageTitle,
		PageFootnote: pageFootnote,
		PageSource:   pageSource,
		UseColor:     req.Page.UseColor,
	}

	doc.Title = textComponent(req.Title)
	doc.Subline = textComponent(req.Subline)
	doc.PageHeader = textComponent(req.PageHeader)
	doc.PageFooter = textComponent(req.PageFooter)
	for _, c := range req.ColumnHeader {
		doc.ColumnHeader = append(doc.ColumnHeader, document.TextComponent{Lines: c.Lines})
	}

	pagebyRow, err := common.ParsePageByRowLocation(req.Body.PagebyRow)
	if err != nil {
		return doc, nil, fmt.Errorf("body.pageby_row: %w", err)
	}
	doc.Body = document.Body{
		ColRelWidth:  req.Body.ColRelWidth,
		AsColHeader:  req.Body.AsColHeader,
		GroupBy:      req.Body.GroupBy,
		PageBy:       req.Body.PageBy,
		NewPage:      req.Body.NewPage,
		PagebyHeader: req.Body.PagebyHeader,
		PagebyRow:    pagebyRow,
		SublineBy:    req.Body.SublineBy,
		LastRow:      req.Body.LastRow,
	}

	if req.Footnote != nil {
		doc.Footnote = &document.TableText{
			TextComponent: document.TextComponent{Lines: req.Footnote.Lines},
			AsTable:       req.Footnote.AsTable,
		}
	}
	if req.Source != nil {
		doc.Source = &document.TableText{
			TextComponent: document.TextComponent{Lines: req.Source.Lines},
			AsTable:       req.Source.AsTable,
		}
	}

	if req.Figure != nil {
		fig, err := loadFigure(req.Figure)
		if err != nil {
			return doc, nil, err
		}
		doc.Figure = fig
	}

	f, err := frame.New(req.Data.Columns, req.Data.Rows)
	if err != nil {
		return doc, nil, fmt.Errorf("data: %w", err)
	}
	return doc, f, nil
}

func textComponent(t *textJSON) *document.TextComponent {
	if t == nil {
		return nil
	}
	return &document.TextComponent{Lines: t.Lines}
}

// defaultOutputName expands output.output_name_template against the
// document's title, producing a filesystem-safe base name when a render
// request is given without an explicit DESTINATION (spec.md §6.5). The
// title is slugged first so punctuation and whitespace from a clinical
// table title never leak into the output path.
func defaultOutputName(out config.OutputConfig, title string) (string, error) {
	name := slug.Make(strings.TrimSpace(title))
	if name == "" {
		name = "output"
	}
	tmpl := out.NameTemplate
	if tmpl == "" {
		tmpl = "{{ .Name }}"
	}
	t, err := template.New("output_name").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("output.output_name_template: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, struct{ Name string }{Name: name}); err != nil {
		return "", fmt.Errorf("output.output_name_template: %w", err)
	}
	return b.String() + ".rtf", nil
}

func loadFigure(fj *figureJSON) (*document.Figure, error) {
	alignment, err := common.ParseJustification(fj.Alignment)
	if err != nil {
		return nil, fmt.Errorf("figure.alignment: %w", err)
	}
	position := document.FigureBefore
	if fj.Position == "after" {
		position = document.FigureAfter
	}

	data := make([][]byte, len(fj.Paths))
	for i, p := range fj.Paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, common.NewResourceError(p, err)
		}
		data[i] = b
	}
	return &document.Figure{
		Data:      data,
		WidthIn:   fj.WidthIn,
		HeightIn:  fj.HeightIn,
		Alignment: alignment,
		Position:  position,
	}, nil
}
