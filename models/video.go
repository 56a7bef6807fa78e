package models

import "time"

// TranscriptSource records which pipeline path produced the transcript.
type TranscriptSource string

const (
	SourceCaptions TranscriptSource = "captions"
	SourceSpeech   TranscriptSource = "speech"
)

// Video identifies the source video and carries the metadata shown with
// the summary. Immutable once resolved; nothing outlives the request.
type Video struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Channel     string        `json:"channel,omitempty"`
	Description string        `json:"description,omitempty"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	Duration    time.Duration `json:"-"`
}

// Transcript is the spoken content of a video as plain text.
type Transcript struct {
	Text   string           `json:"text"`
	Source TranscriptSource `json:"source"`
}

func (t *Transcript) IsEmpty() bool {
	return t == nil || t.Text == ""
}
