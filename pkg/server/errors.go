package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Protocol-Lattice/docdecode/pkg/upload"
)

const (
	MsgMissingFile     = "Please upload a document before submitting."
	MsgMissingQuestion = "Please enter a question before submitting."
)

// APIError represents a structured API error response
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Display string `json:"display,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError creates a 400 error carrying a user-facing message.
func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message}
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	err := &APIError{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: message}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// NewExtractionError maps an ingest failure to an API error.
func NewExtractionError(err error) *APIError {
	apiErr := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "EXTRACTION_ERROR",
		Message: err.Error(),
	}
	switch {
	case errors.Is(err, upload.ErrUnsupportedFileType):
		apiErr.Code = "UNSUPPORTED_FILE_TYPE"
	case errors.Is(err, upload.ErrTooLarge):
		apiErr.Status = http.StatusRequestEntityTooLarge
		apiErr.Code = "FILE_TOO_LARGE"
	}
	return apiErr
}

// NewModelError creates a 502 for a failed model call. Display carries the
// string the HTML page shows.
func NewModelError(display string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadGateway,
		Code:    "MODEL_ERROR",
		Message: "model call failed",
		Display: display,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// httpErrorCode names an echo status error in the same style as the other
// API error codes.
func httpErrorCode(status int) string {
	if status == http.StatusRequestEntityTooLarge {
		return "FILE_TOO_LARGE"
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

// errorHandler renders handler errors as JSON under /api and as the form
// page with an inline error everywhere else.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &httpErr):
		apiErr = &APIError{
			Status:  httpErr.Code,
			Code:    httpErrorCode(httpErr.Code),
			Message: fmt.Sprint(httpErr.Message),
		}
		if httpErr.Code == http.StatusRequestEntityTooLarge {
			apiErr.Message = "the uploaded file exceeds the size limit"
		}
	default:
		apiErr = &APIError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "internal server error"}
		slog.Error("unhandled request error", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(apiErr.Status)
		return
	}
	if !strings.HasPrefix(c.Request().URL.Path, "/api") {
		_ = c.Render(apiErr.Status, "index.html", pageData{Accept: acceptAttr(), Error: apiErr.Message})
		return
	}
	_ = c.JSON(apiErr.Status, apiErr)
}
