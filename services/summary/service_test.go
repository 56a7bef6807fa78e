package summary

import (
	"context"
	"fmt"
	"strings"
	"testing"

	apperrors "yt-brief/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredResponse = `## Introduction
The video explains how solar panels work.

## Main Points
- Photons knock electrons loose.
- Inverters convert DC to AC.

## Key Takeaways
Solar power is viable for homes.`

// fakeGenerator records every prompt and replies from a scripted queue.
type fakeGenerator struct {
	prompts   []string
	responses []string
	err       error
}

func (f *fakeGenerator) generateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return structuredResponse, nil
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func TestSummarizeShortTranscript(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newServiceWithGenerator(gen, Config{Model: "test-model", ChunkSize: 2000})

	summary, err := svc.Summarize(context.Background(), "a short transcript")
	require.NoError(t, err)

	// Below the threshold there is exactly one model call, no chunk pass.
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "single well-structured report")
	assert.Contains(t, gen.prompts[0], "a short transcript")

	assert.Contains(t, summary.Introduction, "solar panels")
	assert.Contains(t, summary.MainPoints, "Photons")
	assert.Contains(t, summary.KeyTakeaways, "viable")
	assert.Equal(t, "test-model", summary.Model)
	assert.True(t, strings.HasPrefix(summary.Markdown, "### Video Summary Report"))
}

func TestSummarizeChunkedPreservesOrder(t *testing.T) {
	words := make([]string, 0, 120)
	for i := 0; i < 120; i++ {
		words = append(words, fmt.Sprintf("word%03d", i))
	}
	text := strings.Join(words, " ")

	gen := &fakeGenerator{
		responses: []string{"notes-one", "notes-two", "notes-three", structuredResponse},
	}
	// Small chunk size to force multiple chunks.
	svc := newServiceWithGenerator(gen, Config{Model: "test-model", ChunkSize: 400})

	_, err := svc.Summarize(context.Background(), text)
	require.NoError(t, err)

	// One prompt per chunk plus a final combine prompt.
	require.GreaterOrEqual(t, len(gen.prompts), 3)
	last := gen.prompts[len(gen.prompts)-1]
	assert.Contains(t, last, "Combine the following notes")

	// Chunk prompts arrive in transcript order.
	firstIdx := strings.Index(gen.prompts[0], "word000")
	assert.GreaterOrEqual(t, firstIdx, 0)
	for i := 1; i < len(gen.prompts)-1; i++ {
		assert.Contains(t, gen.prompts[i-1]+gen.prompts[i], "word")
	}

	// Merged notes keep chunk order in the combine prompt.
	oneIdx := strings.Index(last, "notes-one")
	twoIdx := strings.Index(last, "notes-two")
	require.GreaterOrEqual(t, oneIdx, 0)
	require.GreaterOrEqual(t, twoIdx, 0)
	assert.Less(t, oneIdx, twoIdx)
}

func TestSummarizeEmptyTranscript(t *testing.T) {
	svc := newServiceWithGenerator(&fakeGenerator{}, Config{ChunkSize: 2000})

	_, err := svc.Summarize(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestSummarizeModelFailure(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("quota exceeded")}
	svc := newServiceWithGenerator(gen, Config{ChunkSize: 2000})

	_, err := svc.Summarize(context.Background(), "transcript text")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Code)
}

func TestSummarizeMalformedResponse(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"just some prose with no sections"}}
	svc := newServiceWithGenerator(gen, Config{ChunkSize: 2000})

	_, err := svc.Summarize(context.Background(), "transcript text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}
