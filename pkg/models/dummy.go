package models

import (
	"context"
	"fmt"
	"strings"
)

// DummyLLM is a lightweight model implementation useful for local testing without API calls.
type DummyLLM struct {
	Prefix string
}

func NewDummyLLM(prefix string) *DummyLLM {
	if strings.TrimSpace(prefix) == "" {
		prefix = "Dummy response:"
	}
	return &DummyLLM{Prefix: prefix}
}

func (d *DummyLLM) Name() string { return "Dummy" }

// GenerateParts echoes the last non-empty text line and counts images.
func (d *DummyLLM) GenerateParts(_ context.Context, parts []Part) (string, error) {
	texts, images := splitParts(parts)
	lines := strings.Split(strings.Join(texts, "\n"), "\n")
	var last string
	for i := len(lines) - 1; i >= 0; i-- {
		candidate := strings.TrimSpace(lines[i])
		if candidate != "" {
			last = candidate
			break
		}
	}
	if last == "" {
		last = "<empty prompt>"
	}
	if len(images) > 0 {
		return fmt.Sprintf("%s %s [%d image(s)]", d.Prefix, last, len(images)), nil
	}
	return fmt.Sprintf("%s %s", d.Prefix, last), nil
}

var _ Model = (*DummyLLM)(nil)
