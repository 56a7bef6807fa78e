package tools

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config holds the paths and settings for the external tools the pipeline
// shells out to: yt-dlp, ffmpeg, and whisper.cpp.
type Config struct {
	YtdlpPath  string
	FFmpegPath string

	WhisperPath      string
	WhisperModelPath string
	WhisperLanguage  string
	WhisperThreads   int

	SubtitleLang string
	TempDir      string
	Timeout      time.Duration
}

// Runner executes the external tools with per-call context deadlines.
type Runner struct {
	config Config
	logger *logrus.Logger
}

func NewRunner(cfg Config) (*Runner, error) {
	for _, tool := range []string{cfg.YtdlpPath, cfg.FFmpegPath} {
		if tool == "" {
			return nil, errors.New("tool path must not be empty")
		}
	}

	return &Runner{
		config: cfg,
		logger: logrus.StandardLogger(),
	}, nil
}

// run executes a command and returns its stdout. Stderr is folded into the
// error for diagnostics.
func (r *Runner) run(ctx context.Context, name string, args ...string) (string, error) {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.WithFields(logrus.Fields{
		"tool": name,
		"args": strings.Join(args, " "),
	}).Debug("Executing external tool")

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", errors.Wrapf(err, "command %s failed: %s", name, stderrStr)
		}
		return "", errors.Wrapf(err, "command %s failed", name)
	}

	r.logger.WithFields(logrus.Fields{
		"tool":     name,
		"duration": time.Since(start),
	}).Debug("External tool completed")

	return stdout.String(), nil
}
