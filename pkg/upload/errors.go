package upload

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrTooLarge            = errors.New("file too large")
)

// ExtractionError reports a document that could not be turned into a payload.
// Err is the underlying cause and is available through errors.Is/As.
type ExtractionError struct {
	FileName string
	Type     FileType
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("extraction failed: %v", e.Err)
	}
	return fmt.Sprintf("could not extract %s: %v", e.FileName, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
