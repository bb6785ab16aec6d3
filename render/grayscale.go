// Package render converts generated fields into displayable images.
// It is a thin consumer of field data; clamping and normalization
// policy live here, not in the core.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/pthm-cable/noisefield/field"
)

// Gray maps field values to 8-bit grayscale, clamping to [0, 1].
func Gray(f *field.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.W, f.H))
	for i, v := range f.Data {
		img.Pix[i] = toByte(v)
	}
	return img
}

// GrayNormalized min-max normalizes the field before mapping, so
// signed kernels render with full contrast. A flat field maps to black.
func GrayNormalized(f *field.Field) *image.Gray {
	minV, maxV := f.Data[0], f.Data[0]
	for _, v := range f.Data {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	img := image.NewGray(image.Rect(0, 0, f.W, f.H))
	span := maxV - minV
	if span == 0 {
		return img
	}
	for i, v := range f.Data {
		img.Pix[i] = toByte((v - minV) / span)
	}
	return img
}

// WritePNG encodes the image to a PNG file.
func WritePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
