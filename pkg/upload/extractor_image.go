package upload

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// ImageExtractor decodes JPEG and PNG documents into an image payload.
// No text is extracted.
type ImageExtractor struct{}

func (ImageExtractor) Extract(doc *Document) (Payload, error) {
	img, format, err := image.Decode(bytes.NewReader(doc.Data))
	if err != nil {
		return Payload{}, fmt.Errorf("decode image: %w", err)
	}
	return ImagePayload(img, format, doc.Data), nil
}
