package tools

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TranscribeToSRT runs whisper.cpp on a 16 kHz mono WAV file and returns
// the path of the generated SRT file.
func (r *Runner) TranscribeToSRT(ctx context.Context, wavPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	args := []string{
		"-m", r.config.WhisperModelPath,
		"-f", wavPath,
		"-osrt",
		"-l", r.config.WhisperLanguage,
		"--output-file", outputPrefix,
	}
	if r.config.WhisperThreads > 0 {
		args = append(args, "-t", strconv.Itoa(r.config.WhisperThreads))
	}

	if _, err := r.run(ctx, r.config.WhisperPath, args...); err != nil {
		return "", errors.Wrap(err, "speech-to-text inference failed")
	}

	srtPath := outputPrefix + ".srt"
	if _, err := os.Stat(srtPath); err != nil {
		return "", errors.Wrap(err, "transcript file not found after inference")
	}

	return srtPath, nil
}
