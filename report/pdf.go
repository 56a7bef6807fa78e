package report

import (
	"bytes"
	"strings"

	"yt-brief/models"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	pdfMarginMM    = 15.0
	pdfTitleSize   = 14.0
	pdfHeadingSize = 12.0
	pdfBodySize    = 10.0
	pdfLineHeight  = 5.0
)

// PDF renders the summary as a paginated A4 document with a heading per
// report section. Page breaks are automatic.
func PDF(title string, s *models.Summary) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.SetAutoPageBreak(true, pdfMarginMM)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.MultiCell(0, 7, tr(title), "", "L", false)
	pdf.Ln(3)

	sections := []struct {
		heading string
		body    string
	}{
		{"Introduction", s.Introduction},
		{"Main Points", s.MainPoints},
		{"Key Takeaways", s.KeyTakeaways},
	}

	for _, section := range sections {
		pdf.SetFont("Helvetica", "B", pdfHeadingSize)
		pdf.MultiCell(0, 6, tr(section.heading), "", "L", false)
		pdf.Ln(1)

		pdf.SetFont("Helvetica", "", pdfBodySize)
		for _, line := range strings.Split(section.body, "\n") {
			line = strings.TrimRight(line, " ")
			if strings.TrimSpace(line) == "" {
				pdf.Ln(pdfLineHeight / 2)
				continue
			}
			pdf.MultiCell(0, pdfLineHeight, tr(stripMarkdown(line)), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render PDF")
	}

	return buf.Bytes(), nil
}
