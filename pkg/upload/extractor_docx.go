package upload

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

// DocxExtractor returns the body paragraphs of a Word document joined with
// newlines. Tables, images and other non-paragraph content are skipped.
type DocxExtractor struct{}

func (DocxExtractor) Extract(doc *Document) (Payload, error) {
	zr, err := zip.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return Payload{}, fmt.Errorf("open docx: %w", err)
	}
	var body *zip.File
	for _, f := range zr.File {
		if f.Name == docxBodyPart {
			body = f
			break
		}
	}
	if body == nil {
		return Payload{}, errors.New("open docx: " + docxBodyPart + " not found")
	}

	rc, err := body.Open()
	if err != nil {
		return Payload{}, fmt.Errorf("open docx: %w", err)
	}
	defer rc.Close()

	paras, err := docxParagraphs(rc)
	if err != nil {
		return Payload{}, fmt.Errorf("parse docx: %w", err)
	}
	return TextPayload(strings.Join(paras, "\n")), nil
}

// docxParagraphs walks WordprocessingML and collects the text of every
// w:p that is a direct child of w:body. Only runs directly under that
// paragraph, or under one of its w:hyperlink children, contribute; text
// boxes and other nested content are skipped.
func docxParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paras  []string
		stack  []string
		cur    *strings.Builder
		pDepth = -1 // stack index of the open body paragraph
		inText bool
	)
	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}
	// inRun reports whether the innermost element is a run belonging to the
	// open body paragraph.
	inRun := func() bool {
		if cur == nil || parent() != "r" {
			return false
		}
		switch idx := len(stack) - 1; {
		case idx == pDepth+1:
			return true
		case idx == pDepth+2:
			return stack[pDepth+1] == "hyperlink"
		}
		return false
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if parent() == "body" {
					cur = &strings.Builder{}
					pDepth = len(stack)
				}
			case "t":
				inText = inRun()
			case "tab":
				if inRun() {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if inRun() {
					cur.WriteByte('\n')
				}
			}
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if cur != nil && len(stack) == pDepth {
					paras = append(paras, cur.String())
					cur = nil
					pDepth = -1
				}
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return paras, nil
}
