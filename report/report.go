// Package report renders a structured summary as human-readable text, a
// paginated PDF, or a DOCX document. Rendering is pure formatting; no
// model calls and no stored state.
package report

import (
	"fmt"
	"regexp"
	"strings"

	"yt-brief/models"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Text renders the summary as a markdown report.
func Text(title string, s *models.Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", title)
	sb.WriteString("## Introduction\n\n")
	sb.WriteString(strings.TrimSpace(s.Introduction))
	sb.WriteString("\n\n## Main Points\n\n")
	sb.WriteString(strings.TrimSpace(s.MainPoints))
	sb.WriteString("\n\n## Key Takeaways\n\n")
	sb.WriteString(strings.TrimSpace(s.KeyTakeaways))
	sb.WriteString("\n")

	return sb.String()
}

// Filename builds a safe download filename from a video title.
func Filename(title, ext string) string {
	name := strings.TrimSpace(title)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "video"
	}
	if len(name) > 80 {
		name = name[:80]
	}
	return name + "_summary." + ext
}

// stripMarkdown removes inline markdown markers for plain renderers.
func stripMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
