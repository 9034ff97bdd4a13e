package models

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicLLM implements Model using Anthropic's Messages API.
type AnthropicLLM struct {
	Client    *anthropic.Client
	Model     string
	MaxTokens int
}

func NewAnthropicLLM(apiKey, model string) *AnthropicLLM {
	cl := anthropic.NewClient(
		anthropicopt.WithAPIKey(apiKey),
	)
	if model == "" {
		model = "claude-3-5-sonnet-latest"
	}
	return &AnthropicLLM{
		Client:    &cl,
		Model:     model,
		MaxTokens: 1024,
	}
}

func (a *AnthropicLLM) Name() string { return "Anthropic" }

// GenerateParts performs a single-turn completion and returns concatenated text.
func (a *AnthropicLLM) GenerateParts(ctx context.Context, parts []Part) (string, error) {
	texts, images := splitParts(parts)

	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(images)+1)
	for _, img := range images {
		mt := sanitizeForAnthropic(img.MIME)
		if mt == "" {
			return "", fmt.Errorf("anthropic: unsupported image type %q", img.MIME)
		}
		blocks = append(blocks, anthropic.NewImageBlockBase64(mt, base64.StdEncoding.EncodeToString(img.Data)))
	}
	if len(texts) > 0 {
		blocks = append(blocks, anthropic.NewTextBlock(strings.Join(texts, "\n\n")))
	}
	if len(blocks) == 0 {
		return "", errors.New("anthropic: nothing to send")
	}

	msg, err := a.Client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.Model),
		MaxTokens: int64(a.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	return b.String(), nil
}

var _ Model = (*AnthropicLLM)(nil)
