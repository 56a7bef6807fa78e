package summary

import "strings"

// splitText splits text into chunks of at most chunkSize characters,
// breaking only on word boundaries. Text at or below the threshold comes
// back as a single chunk. A single word longer than chunkSize becomes its
// own chunk rather than being split.
func splitText(text string, chunkSize int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	words := strings.Fields(text)
	var chunks []string
	var current strings.Builder

	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > chunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
