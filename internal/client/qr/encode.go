// Package qr renders a server-issued invitation code into a scannable
// two-color QR image. Encoding failures are non-fatal to callers: the rest
// of the invitation remains usable without its image.
package qr

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Size is the fixed edge length, in pixels, of every rendered QR image.
const Size = 512

// Encode turns the opaque code payload into a Size×Size black/white image.
// It fails when the payload cannot be encoded, e.g. it exceeds the symbol
// capacity.
func Encode(payload string) (image.Image, error) {
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("cannot encode payload: %w", err)
	}
	scaled, err := barcode.Scale(code, Size, Size)
	if err != nil {
		return nil, fmt.Errorf("cannot scale code: %w", err)
	}
	return scaled, nil
}

// WritePNG encodes payload and writes the image as PNG to w.
func WritePNG(w io.Writer, payload string) error {
	img, err := Encode(payload)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SaveFile encodes payload and writes the PNG to path.
func SaveFile(path, payload string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := WritePNG(f, payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
