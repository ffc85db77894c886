// Package report renders filtered resource listings into paginated A4 PDF
// documents: a title line, then a short block per record, with a new page
// whenever the cursor would run into the bottom margin.
package report

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

const (
	topMargin  = 40.0
	leftMargin = 50.0
	lineStep   = 15.0
	blockGap   = 25.0
)

// doc wraps an fpdf document with the vertical cursor the renderers share.
type doc struct {
	pdf    *fpdf.Fpdf
	y      float64
	height float64
}

func newDoc(title string) *doc {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, height := pdf.GetPageSize()

	d := &doc{pdf: pdf, y: topMargin, height: height}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(leftMargin, d.y, title)
	d.y += 30
	pdf.SetFont("Helvetica", "", 10)
	return d
}

// newTableDoc lays out the columnar header used by the peripheral export.
func newTableDoc(title string, headers []string) *doc {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, height := pdf.GetPageSize()

	d := &doc{pdf: pdf, y: topMargin, height: height}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(30, d.y, title)
	d.y += 30
	pdf.SetFont("Helvetica", "", 10)
	for i, h := range headers {
		pdf.Text(30+float64(i)*100, d.y, h)
	}
	d.y += 20
	return d
}

// ensureRoom starts a new page when fewer than margin points remain.
func (d *doc) ensureRoom(margin float64) {
	if d.y > d.height-margin {
		d.pdf.AddPage()
		d.y = topMargin
		d.pdf.SetFont("Helvetica", "", 10)
	}
}

func (d *doc) line(x float64, text string) {
	d.pdf.Text(x, d.y, text)
	d.y += lineStep
}

func (d *doc) endBlock() {
	d.y += blockGap - lineStep
}

func (d *doc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orNone(id *int64) string {
	if id == nil {
		return "None"
	}
	return fmt.Sprintf("%d", *id)
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// truncate cuts on rune boundaries so multi-byte text never yields an
// invalid UTF-8 fragment in the rendered output.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
