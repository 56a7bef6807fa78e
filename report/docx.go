package report

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"yt-brief/models"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/pkg/errors"
)

const (
	docxFont        = "Calibri"
	docxBodySize    = 11
	docxHeadingSize = 13
	docxTitleSize   = 16
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// DOCX renders the summary as a Word document and returns its bytes.
func DOCX(title string, s *models.Summary) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create document")
	}

	addRun(doc.AddParagraph(""), title, true, docxTitleSize)

	sections := []struct {
		heading string
		body    string
	}{
		{"Introduction", s.Introduction},
		{"Main Points", s.MainPoints},
		{"Key Takeaways", s.KeyTakeaways},
	}

	for _, section := range sections {
		doc.AddParagraph("")
		addRun(doc.AddParagraph(""), section.heading, true, docxHeadingSize)
		writeBody(doc, section.body)
	}

	// godocx writes to a path; stage through a temp file.
	tmpDir, err := os.MkdirTemp("", "report-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp dir")
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "summary.docx")
	if err := doc.SaveTo(path); err != nil {
		return nil, errors.Wrap(err, "failed to write document")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}

	return data, nil
}

func writeBody(doc *docx.RootDoc, body string) {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addRun(doc.AddParagraph(""), m[2], true, docxBodySize+1)
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRun(doc.AddParagraph(""), "• "+m[1], false, docxBodySize)
			continue
		}

		addRun(doc.AddParagraph(""), trimmed, false, docxBodySize)
	}
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripMarkdown(text)).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
