// Package transcript fetches existing caption tracks for a video and
// converts them to plain text. It is the first acquisition path of the
// pipeline; when no captions exist it reports ErrNotAvailable so the
// caller can fall back to speech-to-text.
package transcript

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

// ErrNotAvailable signals that the video has no usable caption track.
var ErrNotAvailable = errors.New("no captions available")

type Service interface {
	// Fetch returns the caption transcript for a video, or ErrNotAvailable.
	Fetch(ctx context.Context, url string, meta *tools.VideoMetadata) (*models.Transcript, error)
}

type Config struct {
	Language string
	TempDir  string
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

func (s *service) Fetch(ctx context.Context, url string, meta *tools.VideoMetadata) (*models.Transcript, error) {
	logger := s.logger.WithFields(logrus.Fields{
		"video_id": meta.ID,
		"lang":     s.config.Language,
	})

	if !meta.HasSubtitles(s.config.Language) && !meta.HasAutoCaptions(s.config.Language) {
		logger.Info("No caption tracks listed for video")
		return nil, ErrNotAvailable
	}

	dir, err := os.MkdirTemp(s.config.TempDir, "captions-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp dir")
	}
	defer os.RemoveAll(dir)

	// Manual tracks first; auto-generated ones as a second try.
	attempts := []bool{}
	if meta.HasSubtitles(s.config.Language) {
		attempts = append(attempts, false)
	}
	if meta.HasAutoCaptions(s.config.Language) {
		attempts = append(attempts, true)
	}

	var lastErr error
	for _, auto := range attempts {
		vttPath, err := s.runner.DownloadSubtitles(ctx, url, meta.ID, auto, dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				lastErr = ErrNotAvailable
				continue
			}
			lastErr = err
			logger.WithError(err).WithField("auto", auto).Warn("Caption download failed")
			continue
		}

		text, err := vttToText(vttPath)
		if err != nil {
			lastErr = err
			logger.WithError(err).WithField("auto", auto).Warn("Caption parse failed")
			continue
		}
		if text == "" {
			lastErr = ErrNotAvailable
			continue
		}

		logger.WithField("auto", auto).WithField("length", len(text)).
			Info("Fetched caption transcript")
		return &models.Transcript{Text: text, Source: models.SourceCaptions}, nil
	}

	if lastErr == nil {
		lastErr = ErrNotAvailable
	}
	return nil, lastErr
}

// vttToText flattens a WebVTT file into plain text. Auto-generated tracks
// repeat lines as the caption window rolls, so consecutive duplicates are
// dropped.
func vttToText(path string) (string, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse captions")
	}

	var lines []string
	var prev string
	for _, item := range subs.Items {
		for _, line := range item.Lines {
			text := strings.TrimSpace(line.String())
			if text == "" || text == prev {
				continue
			}
			lines = append(lines, text)
			prev = text
		}
	}

	return strings.Join(lines, "\n"), nil
}
