// Package qr renders serialized identity records as QR code images.
package qr

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// Negative sizes make go-qrcode draw each module this many pixels wide.
	// The 4-module quiet zone is kept (DisableBorder stays false).
	modulePixels = -10
	level        = qrcode.Low
)

// Renderer writes QR images when enabled
type Renderer struct {
	enabled bool
}

// NewRenderer creates a renderer. A disabled renderer never touches the filesystem.
func NewRenderer(enabled bool) *Renderer {
	return &Renderer{enabled: enabled}
}

// Enabled reports whether Render will produce an image
func (r *Renderer) Enabled() bool {
	return r.enabled
}

// Render encodes data into dir/identity_info_<timestamp>.png and returns the
// path. When disabled it returns an empty path and no error.
func (r *Renderer) Render(data, dir string, ts time.Time) (string, error) {
	if !r.enabled {
		return "", nil
	}

	png, err := Encode(data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(ts))
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", fmt.Errorf("write qr image: %w", err)
	}

	return path, nil
}

// Encode returns data as PNG bytes
func Encode(data string) ([]byte, error) {
	code, err := qrcode.New(data, level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	png, err := code.PNG(modulePixels)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}
	return png, nil
}

// FileName returns the image name for ts
func FileName(ts time.Time) string {
	return "identity_info_" + ts.Format("2006-01-02_15-04-05") + ".png"
}
