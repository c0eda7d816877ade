// Package imagetest writes small image fixtures for tests.
package imagetest

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// New returns a w x h image with a simple gradient
func New(w, h int) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.RGBA{uint8(x * 255 / w), uint8(y * 255 / h), 128, 255})
		}
	}
	return m
}

// Encode encodes a w x h image after the extension of name
func Encode(tb testing.TB, name string, w, h int) []byte {
	tb.Helper()
	m := New(w, h)
	var buf bytes.Buffer
	var err error
	switch filepath.Ext(name) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, m, &jpeg.Options{Quality: 90})
	case ".png":
		err = png.Encode(&buf, m)
	case ".bmp":
		err = bmp.Encode(&buf, m)
	case ".tiff":
		err = tiff.Encode(&buf, m, nil)
	default:
		tb.Fatalf("no encoder for %s", name)
	}
	if err != nil {
		tb.Fatalf("encode %s: %s", name, err)
	}
	return buf.Bytes()
}

// Write saves a w x h image as dir/name and returns its path
func Write(tb testing.TB, dir, name string, w, h int) string {
	tb.Helper()
	return WriteBytes(tb, dir, name, Encode(tb, name, w, h))
}

// WriteBytes saves data as dir/name and returns its path
func WriteBytes(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()
	fpath := filepath.Join(dir, name)
	if err := os.WriteFile(fpath, data, 0644); err != nil {
		tb.Fatalf("write %s: %s", fpath, err)
	}
	return fpath
}

// Corrupt saves the first half of a valid encoding, which fails to decode
func Corrupt(tb testing.TB, dir, name string) string {
	tb.Helper()
	data := Encode(tb, name, 40, 30)
	return WriteBytes(tb, dir, name, data[:len(data)/2])
}

// WithOrientation inserts an EXIF APP1 segment carrying the orientation tag
// right after the SOI marker of a JPEG stream.
func WithOrientation(data []byte, orientation uint16) []byte {
	tiffData := []byte{
		'M', 'M', 0x00, 0x2a, 0x00, 0x00, 0x00, 0x08, // header, IFD0 at 8
		0x00, 0x01, // one entry
		0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, // orientation, SHORT, count 1
		byte(orientation >> 8), byte(orientation), 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	payload := append([]byte("Exif\x00\x00"), tiffData...)
	n := len(payload) + 2
	seg := append([]byte{0xff, 0xe1, byte(n >> 8), byte(n)}, payload...)

	out := make([]byte, 0, len(data)+len(seg))
	out = append(out, data[:2]...)
	out = append(out, seg...)
	return append(out, data[2:]...)
}
