package upload

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor concatenates the plain text of every page in order.
type PDFExtractor struct{}

func (PDFExtractor) Extract(doc *Document) (Payload, error) {
	rdr, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return Payload{}, fmt.Errorf("open PDF: %w", err)
	}

	n := rdr.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pages = append(pages, pageText(rdr.Page(i)))
	}
	return TextPayload(strings.Join(pages, "\n")), nil
}

// pageText returns "" for blank, image-only or unreadable pages so that one
// bad page never fails the whole document.
func pageText(pg pdf.Page) (txt string) {
	defer func() {
		if recover() != nil {
			txt = ""
		}
	}()
	if pg.V.IsNull() {
		return ""
	}
	s, err := pg.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
