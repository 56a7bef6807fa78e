package transcript

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"yt-brief/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.000 --> 00:00:02.500
so today we're going to talk about Go

00:00:02.500 --> 00:00:05.000
so today we're going to talk about Go

00:00:05.000 --> 00:00:08.000
and how its concurrency model works
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVTTToText(t *testing.T) {
	path := writeFixture(t, "captions.vtt", sampleVTT)

	text, err := vttToText(path)
	require.NoError(t, err)

	// Rolling duplicates from auto captions are collapsed.
	assert.Equal(t, "so today we're going to talk about Go\nand how its concurrency model works", text)
}

func TestVTTToTextInvalidFile(t *testing.T) {
	path := writeFixture(t, "captions.vtt", "this is not a vtt file")

	_, err := vttToText(path)
	assert.Error(t, err)
}

func TestFetchNoTracksListed(t *testing.T) {
	runner, err := tools.NewRunner(tools.Config{YtdlpPath: "yt-dlp", FFmpegPath: "ffmpeg"})
	require.NoError(t, err)

	svc := NewService(runner, Config{Language: "en", TempDir: t.TempDir()})

	meta := &tools.VideoMetadata{ID: "dQw4w9WgXcQ"}
	_, err = svc.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", meta)
	assert.ErrorIs(t, err, ErrNotAvailable)
}
