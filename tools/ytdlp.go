package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SubtitleTrack is one caption track entry from yt-dlp's metadata dump.
type SubtitleTrack struct {
	URL  string `json:"url"`
	Ext  string `json:"ext"`
	Name string `json:"name"`
}

// VideoMetadata is the subset of yt-dlp's --dump-json output the pipeline
// needs: identity, display metadata, duration, and caption availability.
type VideoMetadata struct {
	ID                string                     `json:"id"`
	Title             string                     `json:"title"`
	Uploader          string                     `json:"uploader"`
	Description       string                     `json:"description"`
	Thumbnail         string                     `json:"thumbnail"`
	Duration          float64                    `json:"duration"`
	Subtitles         map[string][]SubtitleTrack `json:"subtitles"`
	AutomaticCaptions map[string][]SubtitleTrack `json:"automatic_captions"`
}

func (m *VideoMetadata) HasSubtitles(lang string) bool {
	return len(m.Subtitles[lang]) > 0
}

func (m *VideoMetadata) HasAutoCaptions(lang string) bool {
	return len(m.AutomaticCaptions[lang]) > 0
}

// Metadata resolves a video's metadata without downloading any media.
func (r *Runner) Metadata(ctx context.Context, url string) (*VideoMetadata, error) {
	output, err := r.run(ctx, r.config.YtdlpPath,
		"--dump-json",
		"--skip-download",
		"--no-playlist",
		url,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch video metadata")
	}

	var meta VideoMetadata
	if err := json.Unmarshal([]byte(output), &meta); err != nil {
		return nil, errors.Wrap(err, "failed to parse video metadata")
	}

	return &meta, nil
}

// DownloadSubtitles fetches a caption track as WebVTT into dir and returns
// the file path. With auto set it requests auto-generated captions instead
// of manual ones. Returns os.ErrNotExist when yt-dlp produced no file,
// which callers treat as "captions not available".
func (r *Runner) DownloadSubtitles(ctx context.Context, url, videoID string, auto bool, dir string) (string, error) {
	subFlag := "--write-subs"
	if auto {
		subFlag = "--write-auto-subs"
	}

	_, err := r.run(ctx, r.config.YtdlpPath,
		"--skip-download",
		"--no-playlist",
		subFlag,
		"--sub-langs", r.config.SubtitleLang,
		"--sub-format", "vtt",
		"-o", filepath.Join(dir, videoID+".%(ext)s"),
		url,
	)
	if err != nil {
		return "", errors.Wrap(err, "subtitle download failed")
	}

	// yt-dlp exits zero even when the requested track does not exist; the
	// absence of the output file is the signal.
	vttPath := filepath.Join(dir, videoID+"."+r.config.SubtitleLang+".vtt")
	if _, err := os.Stat(vttPath); err != nil {
		matches, _ := filepath.Glob(filepath.Join(dir, videoID+".*.vtt"))
		if len(matches) == 0 {
			return "", os.ErrNotExist
		}
		vttPath = matches[0]
	}

	return vttPath, nil
}

// DownloadAudio extracts the best audio track as MP3 into dir and returns
// the file path.
func (r *Runner) DownloadAudio(ctx context.Context, url, videoID string, dir string) (string, error) {
	_, err := r.run(ctx, r.config.YtdlpPath,
		"--no-playlist",
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"-o", filepath.Join(dir, videoID+".%(ext)s"),
		url,
	)
	if err != nil {
		return "", errors.Wrap(err, "audio download failed")
	}

	audioPath := filepath.Join(dir, videoID+".mp3")
	if _, err := os.Stat(audioPath); err != nil {
		return "", errors.Wrap(err, "audio file not found after download")
	}

	return audioPath, nil
}
