// Package responder builds the instruction prompt for a document question
// and asks the model for an answer.
package responder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Protocol-Lattice/docdecode/pkg/models"
	"github.com/Protocol-Lattice/docdecode/pkg/upload"
)

const defaultProvider = "Gemini"

type Responder struct {
	Model  models.Model
	Logger *slog.Logger
}

func New(model models.Model, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{Model: model, Logger: logger}
}

// Parts returns the request for payload and question: prompt and text for a
// text payload; prompt, empty text and image for an image payload.
func Parts(payload upload.Payload, question string) []models.Part {
	prompt := models.Text(BuildPrompt(question))
	if payload.IsImage() {
		return []models.Part{prompt, models.Text(""), models.Image(payload.MIME(), payload.Data)}
	}
	return []models.Part{prompt, models.Text(payload.Text)}
}

// Answer makes one best-effort model call. It never returns an error or
// panics; failures are reported through Result.Err.
func (r *Responder) Answer(ctx context.Context, payload upload.Payload, question string) (res Result) {
	provider := defaultProvider
	if r.Model != nil {
		provider = r.Model.Name()
	}
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = Result{Err: &CallError{Provider: provider, Err: fmt.Errorf("%v", p)}}
		}
		attrs := []any{
			"provider", provider,
			"payload", payload.Kind.String(),
			"elapsed", time.Since(start),
		}
		if res.Err != nil {
			log.Warn("model call failed", append(attrs, "error", res.Err.Err)...)
			return
		}
		log.Info("model answered", append(attrs, "answer_chars", len(res.Text))...)
	}()

	if r.Model == nil {
		return Result{Err: &CallError{Provider: provider, Err: errors.New("no model configured")}}
	}

	text, err := r.Model.GenerateParts(ctx, Parts(payload, question))
	if err != nil {
		return Result{Err: &CallError{Provider: provider, Err: err}}
	}
	return Result{Text: text}
}
