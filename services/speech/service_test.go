package speech

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:02,500
Welcome back to the channel.

2
00:00:02,500 --> 00:00:05,000
Today we are building a web server.
`

func TestSRTToText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.srt")
	require.NoError(t, os.WriteFile(path, []byte(sampleSRT), 0644))

	text, err := srtToText(path)
	require.NoError(t, err)
	assert.Equal(t, "Welcome back to the channel. Today we are building a web server.", text)
}

func TestSRTToTextMissingFile(t *testing.T) {
	_, err := srtToText(filepath.Join(t.TempDir(), "absent.srt"))
	assert.Error(t, err)
}
