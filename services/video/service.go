// Package video orchestrates the summarize pipeline. Control flow is
// strictly linear and synchronous: validate, resolve metadata, fetch
// captions, fall back to speech-to-text at most once, summarize, return.
// Nothing is persisted; every value is scoped to the request.
package video

import (
	"context"
	"fmt"
	"time"

	apperrors "yt-brief/errors"
	"yt-brief/models"
	"yt-brief/tools"
	"yt-brief/validation"

	"github.com/sirupsen/logrus"
)

const maxDescriptionLength = 300

type service struct {
	resolver   MetadataResolver
	fetcher    TranscriptFetcher
	speech     SpeechTranscriber
	summarizer Summarizer
	validator  *validation.Validator
	config     Config
	logger     *logrus.Logger
}

func NewService(
	resolver MetadataResolver,
	fetcher TranscriptFetcher,
	speech SpeechTranscriber,
	summarizer Summarizer,
	validator *validation.Validator,
	config Config,
) Service {
	return &service{
		resolver:   resolver,
		fetcher:    fetcher,
		speech:     speech,
		summarizer: summarizer,
		validator:  validator,
		config:     config,
		logger:     logrus.StandardLogger(),
	}
}

func (s *service) Summarize(ctx context.Context, url string) (*models.SummarizeResponse, error) {
	const op = "VideoService.Summarize"
	logger := s.logger.WithField("url", url)
	logger.Info("Starting summarize pipeline")

	if err := s.validator.ValidateURL(url); err != nil {
		logger.WithError(err).Info("URL validation failed")
		return nil, err
	}
	videoID := s.validator.ExtractVideoID(url)

	if s.config.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ProcessTimeout)
		defer cancel()
	}

	meta, err := s.resolver.Metadata(ctx, url)
	if err != nil {
		logger.WithError(err).Error("Metadata resolution failed")
		return nil, apperrors.Unavailable(op, err, "Could not resolve video metadata")
	}

	duration := time.Duration(meta.Duration * float64(time.Second))
	if s.config.MaxDuration > 0 && duration > s.config.MaxDuration {
		return nil, apperrors.InvalidInput(op, nil, fmt.Sprintf(
			"Video is too long to process (%s, limit %s)", duration.Round(time.Second), s.config.MaxDuration))
	}

	transcript := s.acquireTranscript(ctx, url, meta, logger)
	if transcript.err != nil {
		return nil, transcript.err
	}

	summary, err := s.summarizer.Summarize(ctx, transcript.value.Text)
	if err != nil {
		logger.WithError(err).Error("Summarization failed")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"video_id": videoID,
		"source":   transcript.value.Source,
	}).Info("Pipeline completed")

	return &models.SummarizeResponse{
		Video:            buildVideo(videoID, url, meta),
		Summary:          summary,
		TranscriptSource: transcript.value.Source,
	}, nil
}

type transcriptResult struct {
	value *models.Transcript
	err   error
}

// acquireTranscript tries captions first and falls back to speech-to-text
// exactly once. A fallback failure is terminal for the request.
func (s *service) acquireTranscript(ctx context.Context, url string, meta *tools.VideoMetadata, logger *logrus.Entry) transcriptResult {
	const op = "VideoService.acquireTranscript"

	transcript, err := s.fetcher.Fetch(ctx, url, meta)
	if err == nil && !transcript.IsEmpty() {
		return transcriptResult{value: transcript}
	}
	if err != nil {
		logger.WithError(err).Info("Captions unavailable, falling back to speech-to-text")
	} else {
		logger.Info("Captions empty, falling back to speech-to-text")
	}

	transcript, err = s.speech.Transcribe(ctx, url, meta)
	if err != nil {
		logger.WithError(err).Error("Speech-to-text fallback failed")
		return transcriptResult{err: apperrors.Unavailable(op, err, "Could not obtain a transcript for this video")}
	}
	if transcript.IsEmpty() {
		return transcriptResult{err: apperrors.Unavailable(op, nil, "Could not obtain a transcript for this video")}
	}

	return transcriptResult{value: transcript}
}

func buildVideo(id, url string, meta *tools.VideoMetadata) *models.Video {
	video := &models.Video{
		ID:          id,
		URL:         url,
		Title:       meta.Title,
		Channel:     meta.Uploader,
		Description: meta.Description,
		Thumbnail:   meta.Thumbnail,
		Duration:    time.Duration(meta.Duration * float64(time.Second)),
	}

	if video.Title == "" {
		video.Title = "YouTube Video " + id
	}
	if video.Thumbnail == "" {
		video.Thumbnail = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
	}
	if len(video.Description) > maxDescriptionLength {
		video.Description = video.Description[:maxDescriptionLength]
	}

	return video
}
