package video

import (
	"context"
	"time"

	"yt-brief/models"
	"yt-brief/tools"
)

type Service interface {
	// Summarize runs the full pipeline for a video URL: metadata, caption
	// fetch (speech fallback), chunked summarization, structured result.
	// The call blocks until the pipeline completes or fails.
	Summarize(ctx context.Context, url string) (*models.SummarizeResponse, error)
}

// MetadataResolver resolves video metadata and caption availability.
type MetadataResolver interface {
	Metadata(ctx context.Context, url string) (*tools.VideoMetadata, error)
}

// TranscriptFetcher is the captions acquisition path.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, url string, meta *tools.VideoMetadata) (*models.Transcript, error)
}

// SpeechTranscriber is the audio-download + speech-to-text fallback path.
type SpeechTranscriber interface {
	Transcribe(ctx context.Context, url string, meta *tools.VideoMetadata) (*models.Transcript, error)
}

// Summarizer produces the structured summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (*models.Summary, error)
}

type Config struct {
	// ProcessTimeout bounds one pipeline run end to end.
	ProcessTimeout time.Duration

	// MaxDuration rejects videos too long to process.
	MaxDuration time.Duration
}
