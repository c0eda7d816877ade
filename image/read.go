package image

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/go-imsto/dimstat/base"
)

// Image is a decoded picture with its measured attributes
type Image struct {
	m image.Image
	*Attr
}

// Result is the outcome of reading one file. Err is set when the file could
// not be read or decoded, Image otherwise.
type Result struct {
	Path  string
	Image *Image
	Err   error
}

// OK ...
func (r Result) OK() bool {
	return r.Err == nil && r.Image != nil
}

// Load reads and decodes the file at path. Failures are carried in the Result.
func Load(path string) Result {
	im, err := Open(path)
	if err != nil {
		logger().Debugw("unreadable image", "path", path, "err", err)
		return Result{Path: path, Err: err}
	}
	return Result{Path: path, Image: im}
}

// Open reads a whole file and decodes it
func Open(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	im, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	im.Name = filepath.Base(path)
	im.Ext = filepath.Ext(path)
	return im, nil
}

// Decode reads an image from r. JPEG input is turned upright according to
// its EXIF orientation, so Width and Height describe the displayed picture.
func Decode(r io.ReadSeeker) (*Image, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	m, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	if m.Bounds().Empty() {
		return nil, ErrorFormat
	}

	orientation := 1
	if format == base.EtJPEG.String() {
		if _, err = r.Seek(0, io.SeekStart); err == nil {
			orientation = readOrientation(r)
			m = orient(m, orientation)
		}
	}

	b := m.Bounds()
	attr := NewAttr(uint(b.Dx()), uint(b.Dy()))
	attr.Size = Size(size)
	attr.Format = format
	attr.Mime = base.ParseExt(format).Mime()
	attr.Orientation = orientation

	return &Image{m: m, Attr: attr}, nil
}
