package models

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

// ---------------------------- Ollama -----------------------------------------

const (
	defaultOllamaHost  = "http://localhost:11434"
	defaultOllamaModel = "llava"
)

type OllamaLLM struct {
	Client *ollama.Client
	Model  string
}

func NewOllamaLLM(host, model string) (*OllamaLLM, error) {
	if host == "" {
		host = defaultOllamaHost
	}
	if model == "" {
		model = defaultOllamaModel
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_HOST %q: %w", host, err)
	}

	httpClient := &http.Client{
		Timeout: 120 * time.Second,
	}

	return &OllamaLLM{Client: ollama.NewClient(u, httpClient), Model: model}, nil
}

func (o *OllamaLLM) Name() string { return "Ollama" }

func (o *OllamaLLM) GenerateParts(ctx context.Context, parts []Part) (string, error) {
	texts, images := splitParts(parts)

	req := &ollama.GenerateRequest{
		Model:  o.Model,
		Prompt: strings.Join(texts, "\n\n"),
	}
	for _, img := range images {
		req.Images = append(req.Images, ollama.ImageData(img.Data))
	}

	var text strings.Builder
	if err := o.Client.Generate(ctx, req, func(gr ollama.GenerateResponse) error {
		text.WriteString(gr.Response)
		return nil
	}); err != nil {
		return "", err
	}
	return text.String(), nil
}

var _ Model = (*OllamaLLM)(nil)
