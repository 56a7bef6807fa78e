package tools

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ConvertToWAV converts an audio file to 16 kHz mono PCM WAV, the input
// format whisper.cpp expects.
func (r *Runner) ConvertToWAV(ctx context.Context, audioPath string) (string, error) {
	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".wav"

	_, err := r.run(ctx, r.config.FFmpegPath,
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	)
	if err != nil {
		return "", errors.Wrap(err, "audio conversion failed")
	}

	return wavPath, nil
}
