package llmclient

import (
	"context"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client. It only
// focuses on the API call itself; retries, rate limiting, and logging are
// applied via middleware.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	// The genai client reads the API key from GEMINI_API_KEY when the config
	// carries none; pass it through when the caller resolved one explicitly.
	cfg := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }

// GenerateText submits the prompt as a single user content and returns the
// first candidate's text.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	txt := resp.Candidates[0].Content.Parts[0].Text
	if txt == "" {
		return "", ErrEmptyResponse
	}
	return txt, nil
}
