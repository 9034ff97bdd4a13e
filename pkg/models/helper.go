package models

import (
	"context"
	"fmt"
	"strings"
)

var mimeAliasMap = map[string]string{
	"image/jpg":   "image/jpeg",
	"image/pjpeg": "image/jpeg",
	"image/x-png": "image/png",
}

// Options selects and configures a provider. APIKey and Host come from the
// startup config; providers never read the environment themselves.
type Options struct {
	Provider string
	Model    string
	APIKey   string
	Host     string // ollama only
}

// NewLLMProvider returns a concrete Model.
func NewLLMProvider(ctx context.Context, opts Options) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "gemini", "google", "":
		return NewGeminiLLM(ctx, opts.APIKey, opts.Model)
	case "openai":
		return NewOpenAILLM(opts.APIKey, opts.Model), nil
	case "anthropic", "claude":
		return NewAnthropicLLM(opts.APIKey, opts.Model), nil
	case "ollama":
		return NewOllamaLLM(opts.Host, opts.Model)
	case "dummy":
		return NewDummyLLM(""), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", opts.Provider)
	}
}

// normalizeMIME lower-cases, strips parameters and resolves aliases.
func normalizeMIME(m string) string {
	m = strings.ToLower(strings.TrimSpace(m))
	if i := strings.IndexByte(m, ';'); i >= 0 {
		m = strings.TrimSpace(m[:i])
	}
	for strings.HasPrefix(m, "image/image/") {
		m = "image/" + strings.TrimPrefix(m, "image/image/")
	}
	if alias, ok := mimeAliasMap[m]; ok {
		return alias
	}
	return m
}

// sanitizeForGemini maps a MIME type to the format name genai.ImageData
// expects. Returns "" for types Gemini will not accept inline.
func sanitizeForGemini(mt string) string {
	switch normalizeMIME(mt) {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpeg"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	default:
		return ""
	}
}

func sanitizeForAnthropic(mt string) string {
	switch m := normalizeMIME(mt); m {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
		return m
	default:
		return ""
	}
}

// getOpenAIMimeType converts normalized MIME types to OpenAI's expected format
func getOpenAIMimeType(mt string) string {
	switch m := normalizeMIME(mt); m {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
		return m
	default:
		return ""
	}
}

// splitParts separates the non-empty text parts from the image parts,
// preserving order within each group.
func splitParts(parts []Part) (texts []string, images []Part) {
	for _, p := range parts {
		switch p.Kind {
		case PartText:
			if strings.TrimSpace(p.Text) != "" {
				texts = append(texts, p.Text)
			}
		case PartImage:
			images = append(images, p)
		}
	}
	return texts, images
}
