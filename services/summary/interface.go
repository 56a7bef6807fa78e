package summary

import (
	"context"

	"yt-brief/models"
)

type Service interface {
	// Summarize produces a structured summary of the transcript text,
	// chunking and merging when the text exceeds the configured threshold.
	Summarize(ctx context.Context, text string) (*models.Summary, error)
}

type Config struct {
	APIKey string
	Model  string

	// ChunkSize is the character threshold above which the transcript is
	// summarized per chunk and merged.
	ChunkSize int

	// RequestsPerMinute paces the model calls.
	RequestsPerMinute int
}
