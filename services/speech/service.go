// Package speech is the fallback transcriber: it downloads a video's
// audio, converts it to the format whisper.cpp expects, and runs local
// speech-to-text inference. Any failure here is terminal for the request.
package speech

import (
	"context"
	"os"
	"strings"

	"yt-brief/models"
	"yt-brief/tools"

	"github.com/asticode/go-astisub"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Transcribe(ctx context.Context, url string, meta *tools.VideoMetadata) (*models.Transcript, error)
}

type Config struct {
	TempDir string
}

type service struct {
	runner *tools.Runner
	config Config
	logger *logrus.Logger
}

func NewService(runner *tools.Runner, config Config) Service {
	return &service{
		runner: runner,
		config: config,
		logger: logrus.StandardLogger(),
	}
}

func (s *service) Transcribe(ctx context.Context, url string, meta *tools.VideoMetadata) (*models.Transcript, error) {
	logger := s.logger.WithField("video_id", meta.ID)
	logger.Info("Starting speech-to-text fallback")

	dir, err := os.MkdirTemp(s.config.TempDir, "speech-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp dir")
	}
	defer os.RemoveAll(dir)

	audioPath, err := s.runner.DownloadAudio(ctx, url, meta.ID, dir)
	if err != nil {
		return nil, errors.Wrap(err, "audio download failed")
	}

	wavPath, err := s.runner.ConvertToWAV(ctx, audioPath)
	if err != nil {
		return nil, errors.Wrap(err, "audio conversion failed")
	}

	srtPath, err := s.runner.TranscribeToSRT(ctx, wavPath)
	if err != nil {
		return nil, errors.Wrap(err, "speech-to-text failed")
	}

	text, err := srtToText(srtPath)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errors.New("speech-to-text produced an empty transcript")
	}

	logger.WithField("length", len(text)).Info("Speech-to-text completed")
	return &models.Transcript{Text: text, Source: models.SourceSpeech}, nil
}

func srtToText(path string) (string, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse transcript")
	}

	var lines []string
	for _, item := range subs.Items {
		for _, line := range item.Lines {
			text := strings.TrimSpace(line.String())
			if text != "" {
				lines = append(lines, text)
			}
		}
	}

	return strings.Join(lines, " "), nil
}
