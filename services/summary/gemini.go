package summary

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// generator abstracts the model call so the chunk/merge flow can be tested
// without the Gemini API.
type generator interface {
	generateText(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

func newGeminiGenerator(ctx context.Context, cfg Config) (*geminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 15
	}

	return &geminiGenerator{
		client:  client,
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}, nil
}

func (g *geminiGenerator) generateText(ctx context.Context, prompt string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, "generate content failed")
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", errors.New("model response contained no text")
	}

	return text, nil
}
