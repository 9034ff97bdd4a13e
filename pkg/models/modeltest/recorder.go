// Package modeltest provides a recording models.Model for tests.
package modeltest

import (
	"context"

	"github.com/Protocol-Lattice/docdecode/pkg/models"
)

// Recorder records every call and replies with Reply, Err, or a panic.
type Recorder struct {
	Provider string
	Reply    string
	Err      error
	Panic    any

	Calls [][]models.Part
}

func (r *Recorder) Name() string {
	if r.Provider == "" {
		return "Gemini"
	}
	return r.Provider
}

func (r *Recorder) GenerateParts(_ context.Context, parts []models.Part) (string, error) {
	r.Calls = append(r.Calls, append([]models.Part(nil), parts...))
	if r.Panic != nil {
		panic(r.Panic)
	}
	if r.Err != nil {
		return "", r.Err
	}
	return r.Reply, nil
}

// Last returns the parts of the most recent call, or nil.
func (r *Recorder) Last() []models.Part {
	if len(r.Calls) == 0 {
		return nil
	}
	return r.Calls[len(r.Calls)-1]
}

var _ models.Model = (*Recorder)(nil)
