// Package receipt lays out and renders receipt documents.
package receipt

import (
	"portal/internal/domain/entity"
)

// Geometry is the fixed page geometry in millimetres, y growing downwards.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	// TitleGap is the distance from the title baseline to the first field line.
	TitleGap float64
	LineStep float64
	// MaxColumns clips field lines to this many characters.
	MaxColumns    int
	TitleFontSize float64
	BodyFontSize  float64
}

// A4 is the geometry used for every receipt.
func A4() Geometry {
	return Geometry{
		PageWidth:     210,
		PageHeight:    297,
		Margin:        20,
		TitleGap:      12,
		LineStep:      8,
		MaxColumns:    110,
		TitleFontSize: 16,
		BodyFontSize:  11,
	}
}

// Line is a single positioned text line.
type Line struct {
	Text  string
	X     float64
	Y     float64 // baseline
	Title bool
}

// Page holds the lines placed on one page.
type Page struct {
	Lines []Line
}

// Document is the laid out receipt, independent of the output format.
type Document struct {
	Title    string
	Geometry Geometry
	Pages    []Page
}

// LineCount returns the number of lines over all pages, title included.
func (d *Document) LineCount() int {
	count := 0
	for _, page := range d.Pages {
		count += len(page.Lines)
	}

	return count
}

// PageBreaks returns, for every page after the first, the index of the field it starts with.
func (d *Document) PageBreaks() []int {
	breaks := make([]int, 0, len(d.Pages))
	field := len(d.Pages[0].Lines) - 1
	for _, page := range d.Pages[1:] {
		breaks = append(breaks, field)
		field += len(page.Lines)
	}

	return breaks
}

// Layout places the title and one "label: value" line per field. A new page is
// started once the next line would fall below the bottom margin. Pages after the
// first carry no title.
func Layout(title string, fields []entity.ReceiptField, g Geometry) *Document {
	doc := &Document{
		Title:    title,
		Geometry: g,
		Pages: []Page{{
			Lines: []Line{{Text: title, X: g.Margin, Y: g.Margin, Title: true}},
		}},
	}

	bottom := g.PageHeight - g.Margin
	y := g.Margin + g.TitleGap

	for _, field := range fields {
		if y > bottom {
			doc.Pages = append(doc.Pages, Page{})
			y = g.Margin
		}

		last := len(doc.Pages) - 1
		doc.Pages[last].Lines = append(doc.Pages[last].Lines, Line{
			Text: clip(field.Label+": "+field.Value, g.MaxColumns),
			X:    g.Margin,
			Y:    y,
		})
		y += g.LineStep
	}

	return doc
}

func clip(text string, columns int) string {
	if columns <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= columns {
		return text
	}

	return string(runes[:columns])
}
