package upload

import "image"

// Document is one uploaded file. It lives only for the duration of a request.
type Document struct {
	Name string // original file name; its extension selects the extractor
	Data []byte
}

// Type returns the declared file type derived from the name's extension.
func (d *Document) Type() FileType { return ParseFileType(d.Name) }

type PayloadKind int

const (
	PayloadText PayloadKind = iota + 1
	PayloadImage
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadText:
		return "text"
	case PayloadImage:
		return "image"
	default:
		return "invalid"
	}
}

// Payload is the normalized result of extraction: either plain text or a
// decoded image, never both. Build it with TextPayload or ImagePayload.
type Payload struct {
	Kind PayloadKind
	Text string

	Image  image.Image
	Format string // decoder format name, "png" or "jpeg"
	Data   []byte // original encoded bytes, sent to the model as-is
}

func TextPayload(s string) Payload { return Payload{Kind: PayloadText, Text: s} }

func ImagePayload(img image.Image, format string, data []byte) Payload {
	return Payload{Kind: PayloadImage, Image: img, Format: format, Data: data}
}

func (p Payload) IsImage() bool { return p.Kind == PayloadImage }

// Valid reports whether exactly one variant is populated.
func (p Payload) Valid() bool {
	switch p.Kind {
	case PayloadText:
		return p.Image == nil && p.Data == nil
	case PayloadImage:
		return p.Image != nil && p.Text == ""
	default:
		return false
	}
}

// MIME is the media type of an image payload, "" for text.
func (p Payload) MIME() string {
	if p.Kind != PayloadImage || p.Format == "" {
		return ""
	}
	return "image/" + p.Format
}

// Extractor converts a document of one file type into a payload.
type Extractor interface {
	Extract(doc *Document) (Payload, error)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(doc *Document) (Payload, error)

func (f ExtractorFunc) Extract(doc *Document) (Payload, error) { return f(doc) }

type Redactor interface {
	Redact(s string) (string, bool) // returns redacted string and whether any changes were made
}
