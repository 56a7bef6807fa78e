package validation

import (
	"net/url"
	"regexp"
	"strings"

	"yt-brief/errors"
)

// Video ID extraction patterns covering the YouTube URL shapes we accept:
// watch, short youtu.be links, embed/v, shorts, and live streams.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:m\.)?youtube\.com/watch\?(?:.*&)?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/(?:embed|v)/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`),
}

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateURL performs URL validation
func (v *Validator) ValidateURL(urlStr string) error {
	const op = "Validator.ValidateURL"

	if urlStr == "" {
		return errors.InvalidInput(op, nil, "URL is required")
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.InvalidInput(op, err, "Invalid URL format")
	}

	// Protocol validation
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidInput(op, nil, "URL must use HTTP or HTTPS")
	}

	// Domain validation
	host := parsedURL.Hostname()
	if !isYouTubeHost(host) {
		return errors.InvalidInput(op, nil, "Only YouTube URLs are supported")
	}

	if v.ExtractVideoID(urlStr) == "" {
		return errors.InvalidInput(op, nil, "Could not extract a video ID from the URL")
	}

	return nil
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
// Returns "" when no pattern matches.
func (v *Validator) ExtractVideoID(urlStr string) string {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(urlStr); m != nil {
			return m[1]
		}
	}
	return ""
}

func isYouTubeHost(host string) bool {
	host = strings.ToLower(host)
	return host == "youtube.com" ||
		strings.HasSuffix(host, ".youtube.com") ||
		host == "youtu.be"
}
