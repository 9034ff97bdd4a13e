package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

const DefaultMaxBytes = int64(10 << 20) // 10 MiB

// Ingestor turns uploaded documents into payloads. Dispatch is by declared
// extension only; a mislabeled file fails in the wrong extractor rather than
// being re-detected.
type Ingestor struct {
	Extractors map[FileType]Extractor
	Redactor   Redactor // optional, applied to text payloads
	MaxBytes   int64    // cap to avoid huge uploads (default: 10MiB)
	Logger     *slog.Logger
}

func NewDefaultIngestor() *Ingestor {
	return &Ingestor{
		Extractors: defaultExtractors(),
		MaxBytes:   DefaultMaxBytes,
		Logger:     slog.Default(),
	}
}

// Process extracts doc. Every failure, including a panic inside a parsing
// library, is returned as an *ExtractionError.
func (ig *Ingestor) Process(doc *Document) (p Payload, err error) {
	if doc == nil {
		return Payload{}, &ExtractionError{Err: errors.New("no document")}
	}
	ft := doc.Type()
	fail := func(cause error) error {
		return &ExtractionError{FileName: doc.Name, Type: ft, Err: cause}
	}

	defer func() {
		if r := recover(); r != nil {
			p, err = Payload{}, fail(fmt.Errorf("parser panic: %v", r))
		}
		if err != nil {
			ig.logger().Warn("extraction failed", "file", doc.Name, "type", string(ft), "error", err)
		}
	}()

	if limit := ig.maxBytes(); int64(len(doc.Data)) > limit {
		return Payload{}, fail(fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, len(doc.Data), limit))
	}

	extractor, ok := ig.Extractors[ft]
	if !ok || ft == FileTypeUnknown {
		return Payload{}, fail(fmt.Errorf("%w %q", ErrUnsupportedFileType, Ext(doc.Name)))
	}

	p, err = extractor.Extract(doc)
	if err != nil {
		return Payload{}, fail(err)
	}
	if !p.Valid() {
		return Payload{}, fail(errors.New("extractor returned an empty payload"))
	}

	if ig.Redactor != nil && p.Kind == PayloadText {
		if red, changed := ig.Redactor.Redact(p.Text); changed {
			p.Text = red
			ig.logger().Debug("redacted extracted text", "file", doc.Name)
		}
	}

	ig.logger().Debug("document extracted",
		"file", doc.Name,
		"type", string(ft),
		"payload", p.Kind.String(),
		"bytes", len(doc.Data),
	)
	return p, nil
}

// IngestReader reads at most MaxBytes+1 from r and processes the result as
// a document called name.
func (ig *Ingestor) IngestReader(name string, r io.Reader) (Payload, error) {
	buf, err := io.ReadAll(io.LimitReader(r, ig.maxBytes()+1))
	if err != nil {
		return Payload{}, &ExtractionError{FileName: name, Type: ParseFileType(name), Err: fmt.Errorf("read upload: %w", err)}
	}
	return ig.Process(&Document{Name: name, Data: buf})
}

func (ig *Ingestor) maxBytes() int64 {
	if ig.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return ig.MaxBytes
}

func (ig *Ingestor) logger() *slog.Logger {
	if ig.Logger == nil {
		return slog.Default()
	}
	return ig.Logger
}
