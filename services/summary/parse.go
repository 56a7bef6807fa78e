package summary

import (
	"regexp"
	"strings"

	"yt-brief/models"
)

// Section headings the instruction template asks the model for. Matched
// leniently: optional markdown heading markers or bold, optional trailing
// colon or parenthetical.
var sectionPattern = regexp.MustCompile(`(?i)^(?:#{1,6}\s*|\*\*)?\s*(introduction|main points|key takeaways)\b`)

// parseSummary splits the model's markdown into the three report sections.
// The caller decides whether an incomplete result is an error.
func parseSummary(markdown, model string) *models.Summary {
	s := &models.Summary{
		Markdown: markdown,
		Model:    model,
	}

	var current string
	var buf strings.Builder

	flush := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		switch current {
		case "introduction":
			s.Introduction = text
		case "main points":
			s.MainPoints = text
		case "key takeaways":
			s.KeyTakeaways = text
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if m := sectionPattern.FindStringSubmatch(trimmed); m != nil {
			flush()
			current = strings.ToLower(m[1])
			// Keep any content that follows the heading on the same line.
			rest := strings.TrimSpace(trimmed[len(m[0]):])
			rest = strings.TrimLeft(rest, "*:- ")
			if rest != "" {
				buf.WriteString(rest)
				buf.WriteByte('\n')
			}
			continue
		}
		if current != "" {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	flush()

	return s
}
