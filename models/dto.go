package models

// SummarizeRequest is the incoming request for the summarize pipeline.
type SummarizeRequest struct {
	URL string `json:"url"`
}

// SummarizeResponse is the API response for a completed pipeline run.
type SummarizeResponse struct {
	Video            *Video           `json:"video"`
	Summary          *Summary         `json:"summary"`
	TranscriptSource TranscriptSource `json:"transcript_source"`
}

// ReportRequest asks for a rendered report of an already-produced summary.
// The client sends back the summary it received from /api/summarize; no
// model call and no server-side state is involved.
type ReportRequest struct {
	Title   string   `json:"title"`
	Summary *Summary `json:"summary"`
}
