package upload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// TextExtractor returns the document bytes verbatim. They must be UTF-8.
type TextExtractor struct{}

func (TextExtractor) Extract(doc *Document) (Payload, error) {
	if !utf8.Valid(doc.Data) {
		return Payload{}, errors.New("text is not valid UTF-8")
	}
	return TextPayload(string(doc.Data)), nil
}

// JSONExtractor parses the document and re-serializes it with two-space
// indentation. Numbers keep their literal text, but a number outside the
// float64 range is rejected.
type JSONExtractor struct{}

func (JSONExtractor) Extract(doc *Document) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(doc.Data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Payload{}, fmt.Errorf("invalid JSON: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return Payload{}, errors.New("invalid JSON: unexpected data after top-level value")
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Payload{}, fmt.Errorf("re-encode JSON: %w", err)
	}
	return TextPayload(string(out)), nil
}

// CSVExtractor renders comma-separated rows as a table dump. Rows may have
// differing field counts.
type CSVExtractor struct{}

func (CSVExtractor) Extract(doc *Document) (Payload, error) {
	r := csv.NewReader(bytes.NewReader(doc.Data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return Payload{}, fmt.Errorf("invalid CSV: %w", err)
	}
	var b strings.Builder
	renderTable(&b, "", rows)
	return TextPayload(b.String()), nil
}

// renderTable writes one line per row with cells joined by " | ", preceded
// by a "Sheet: <name>" header when name is set.
func renderTable(b *strings.Builder, name string, rows [][]string) {
	if name != "" {
		b.WriteString("Sheet: ")
		b.WriteString(name)
		b.WriteByte('\n')
	}
	for _, row := range rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteByte('\n')
	}
}
