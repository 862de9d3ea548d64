package utils

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/gen2brain/webp"
)

// ToWebP re-encodes an image as a high-quality WebP.
func ToWebP(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		// Fallback: try generic decode if not PNG
		var err2 error
		img, _, err2 = image.Decode(bytes.NewReader(data))
		if err2 != nil {
			return nil, fmt.Errorf("failed to decode image (png: %v, generic: %v)", err, err2)
		}
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Lossless: false, Quality: 100}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
