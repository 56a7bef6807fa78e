// Package summary turns transcript text into a structured report using
// the Gemini API. Long transcripts are summarized chunk by chunk in order
// and the partial notes are merged with a combining prompt.
package summary

import (
	"context"
	"fmt"
	"strings"

	apperrors "yt-brief/errors"
	"yt-brief/models"

	"github.com/sirupsen/logrus"
)

const reportPrompt = `Summarize the following transcript into a single well-structured report for the entire video:

- Combine all details into ONE report.
- Do NOT include timestamps.
- Use sections: Introduction, Main Points (with subheadings), and Key Takeaways.
- Make it concise, clear, and professional for note-taking or study purposes.

Transcript:
%s`

const chunkPrompt = `Summarize this part of the transcript into short, clear bullet points (max 5):
%s`

const combinePrompt = `Combine the following notes into a single well-structured report:
- Sections: Introduction, Main Points, Key Takeaways
- Remove repetition
- Do NOT include timestamps

Notes:
%s`

type service struct {
	gen    generator
	config Config
	logger *logrus.Logger
}

func NewService(ctx context.Context, config Config) (Service, error) {
	gen, err := newGeminiGenerator(ctx, config)
	if err != nil {
		return nil, err
	}
	return newServiceWithGenerator(gen, config), nil
}

func newServiceWithGenerator(gen generator, config Config) Service {
	return &service{
		gen:    gen,
		config: config,
		logger: logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, text string) (*models.Summary, error) {
	const op = "SummaryService.Summarize"

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.InvalidInput(op, nil, "Transcript is empty")
	}

	chunks := splitText(text, s.config.ChunkSize)
	s.logger.WithFields(logrus.Fields{
		"transcript_length": len(text),
		"chunks":            len(chunks),
	}).Info("Starting summarization")

	var response string
	var err error
	if len(chunks) == 1 {
		response, err = s.gen.generateText(ctx, fmt.Sprintf(reportPrompt, text))
		if err != nil {
			return nil, apperrors.Unavailable(op, err, "Failed to generate summary")
		}
	} else {
		response, err = s.summarizeChunked(ctx, chunks)
		if err != nil {
			return nil, err
		}
	}

	summary := parseSummary(strings.TrimSpace(response), s.config.Model)
	if !summary.IsComplete() {
		return nil, apperrors.Unavailable(op, nil, "Model returned a malformed summary")
	}
	summary.Markdown = "### Video Summary Report\n\n" + summary.Markdown

	s.logger.WithField("summary_length", len(summary.Markdown)).Info("Summarization completed")
	return summary, nil
}

// summarizeChunked summarizes each chunk in sequence order and merges the
// partial notes into one report. Chunk order is preserved throughout.
func (s *service) summarizeChunked(ctx context.Context, chunks []string) (string, error) {
	const op = "SummaryService.summarizeChunked"

	notes := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			return "", apperrors.Internal(op, ctx.Err(), "Summarization cancelled")
		default:
		}

		s.logger.WithFields(logrus.Fields{
			"chunk": i + 1,
			"total": len(chunks),
		}).Debug("Summarizing chunk")

		note, err := s.gen.generateText(ctx, fmt.Sprintf(chunkPrompt, chunk))
		if err != nil {
			return "", apperrors.Unavailable(op, err, fmt.Sprintf("Failed to summarize chunk %d of %d", i+1, len(chunks)))
		}
		notes = append(notes, strings.TrimSpace(note))
	}

	combined, err := s.gen.generateText(ctx, fmt.Sprintf(combinePrompt, strings.Join(notes, "\n")))
	if err != nil {
		return "", apperrors.Unavailable(op, err, "Failed to merge chunk summaries")
	}

	return combined, nil
}
