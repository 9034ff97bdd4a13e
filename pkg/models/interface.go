package models

import "context"

type PartKind int

const (
	PartText PartKind = iota
	PartImage
)

// Part is one element of a multimodal request. Text parts carry Text;
// image parts carry the encoded bytes and their MIME type.
type Part struct {
	Kind PartKind
	Text string
	MIME string
	Data []byte
}

func Text(s string) Part { return Part{Kind: PartText, Text: s} }

func Image(mime string, data []byte) Part {
	return Part{Kind: PartImage, MIME: mime, Data: data}
}

// Model is a remote (or local) completion service that accepts an ordered
// list of parts and returns the generated text.
type Model interface {
	// Name is the provider's display name, e.g. "Gemini".
	Name() string
	GenerateParts(ctx context.Context, parts []Part) (string, error)
}
