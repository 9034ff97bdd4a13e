package server

import (
	"encoding/base64"
	"errors"
	"html/template"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Protocol-Lattice/docdecode/pkg/responder"
	"github.com/Protocol-Lattice/docdecode/pkg/upload"
)

type Handler struct {
	ingestor  *upload.Ingestor
	responder *responder.Responder
	logger    *slog.Logger
}

func NewHandler(ing *upload.Ingestor, resp *responder.Responder, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{ingestor: ing, responder: resp, logger: logger}
}

// askResponse is the JSON body of a successful /api/ask.
type askResponse struct {
	File    string `json:"file"`
	Payload string `json:"payload"`
	Answer  string `json:"answer"`
}

// pageData feeds templates/index.html.
type pageData struct {
	Accept       string
	Question     string
	FileName     string
	ImagePreview template.URL
	Answer       string
	Error        string
	ModelError   string
}

// outcome is one pass of the pipeline.
type outcome struct {
	fileName string
	question string
	payload  upload.Payload
	result   responder.Result
}

// run validates the form, ingests the file and asks the model. The model is
// never called when validation or extraction fails.
func (h *Handler) run(c echo.Context) (*outcome, *APIError) {
	out := &outcome{question: strings.TrimSpace(c.FormValue("question"))}

	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return out, NewValidationError(MsgMissingFile)
		}
		return out, NewBadRequestError("invalid upload form", err)
	}
	out.fileName = fh.Filename
	if out.question == "" {
		return out, NewValidationError(MsgMissingQuestion)
	}

	payload, err := h.ingest(fh)
	if err != nil {
		return out, NewExtractionError(err)
	}
	out.payload = payload

	out.result = h.responder.Answer(c.Request().Context(), payload, out.question)
	return out, nil
}

func (h *Handler) ingest(fh *multipart.FileHeader) (upload.Payload, error) {
	src, err := fh.Open()
	if err != nil {
		return upload.Payload{}, &upload.ExtractionError{FileName: fh.Filename, Err: err}
	}
	defer src.Close()
	return h.ingestor.IngestReader(fh.Filename, src)
}

// HandleAsk answers a multipart question and replies with JSON.
func (h *Handler) HandleAsk(c echo.Context) error {
	out, apiErr := h.run(c)
	if apiErr != nil {
		return apiErr
	}
	if !out.result.OK() {
		return NewModelError(out.result.String(), out.result.Err.Err)
	}
	return c.JSON(http.StatusOK, askResponse{
		File:    out.fileName,
		Payload: out.payload.Kind.String(),
		Answer:  out.result.Text,
	})
}

// HandleIndex renders the empty upload form.
func (h *Handler) HandleIndex(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", pageData{Accept: acceptAttr()})
}

// HandleSubmit handles the HTML form and renders the answer, the model
// error, or an inline validation/extraction error on the same page.
func (h *Handler) HandleSubmit(c echo.Context) error {
	out, apiErr := h.run(c)
	data := pageData{
		Accept:   acceptAttr(),
		Question: out.question,
		FileName: out.fileName,
	}
	if apiErr != nil {
		data.Error = apiErr.Message
		return c.Render(apiErr.Status, "index.html", data)
	}

	if out.payload.IsImage() {
		data.ImagePreview = template.URL("data:" + out.payload.MIME() + ";base64," +
			base64.StdEncoding.EncodeToString(out.payload.Data))
	}
	if out.result.OK() {
		data.Answer = out.result.Text
	} else {
		data.ModelError = out.result.String()
	}
	return c.Render(http.StatusOK, "index.html", data)
}

// HandleHealth returns the health status of the server
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func acceptAttr() string {
	exts := make([]string, 0, len(upload.SupportedTypes))
	for _, ft := range upload.SupportedTypes {
		exts = append(exts, "."+string(ft))
	}
	return strings.Join(exts, ",")
}
