package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ---------------------------- Google Gemini ----------------------------------

const DefaultGeminiModel = "gemini-1.5-flash"

// ErrMissingAPIKey is returned by every call on a model constructed without
// a credential.
var ErrMissingAPIKey = errors.New("API key not valid: missing GOOGLE_API_KEY or GEMINI_API_KEY")

type GeminiLLM struct {
	Client *genai.Client
	Model  string

	initErr error
}

// NewGeminiLLM builds a client for model using apiKey. A missing key does not
// fail construction; the resulting model reports ErrMissingAPIKey per call.
func NewGeminiLLM(ctx context.Context, apiKey, model string) (*GeminiLLM, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	if apiKey == "" {
		return &GeminiLLM{Model: model, initErr: ErrMissingAPIKey}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &GeminiLLM{Client: client, Model: model}, nil
}

func (g *GeminiLLM) Name() string { return "Gemini" }

// GenerateParts sends parts in order. Empty text parts are dropped on the
// wire because the API rejects them.
func (g *GeminiLLM) GenerateParts(ctx context.Context, parts []Part) (string, error) {
	if g.initErr != nil {
		return "", g.initErr
	}

	wire := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		switch p.Kind {
		case PartText:
			if p.Text == "" {
				continue
			}
			wire = append(wire, genai.Text(p.Text))
		case PartImage:
			format := sanitizeForGemini(p.MIME)
			if format == "" {
				return "", fmt.Errorf("gemini: unsupported image type %q", p.MIME)
			}
			wire = append(wire, genai.ImageData(format, p.Data))
		}
	}
	if len(wire) == 0 {
		return "", errors.New("gemini: nothing to send")
	}

	model := g.Client.GenerativeModel(g.Model)
	resp, err := model.GenerateContent(ctx, wire...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("response has no text")
	}
	return b.String(), nil
}

func (g *GeminiLLM) Close() error {
	if g.Client == nil {
		return nil
	}
	return g.Client.Close()
}

var _ Model = (*GeminiLLM)(nil)
