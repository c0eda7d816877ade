package image

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-imsto/dimstat/base"
	"github.com/go-imsto/dimstat/hash"
	"github.com/go-imsto/dimstat/utils"
)

// WriteOption ...
type WriteOption struct {
	Format  base.ImagExt
	Quality Quality
}

// Output describes one written file
type Output struct {
	Path   string
	Width  int
	Height int
	Size   int
	Digest string
}

// countWriter passes writes through to w and keeps the byte total
type countWriter struct {
	w io.Writer
	n int
}

func (cw *countWriter) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	cw.n += n
	return
}

// SaveTo encodes m into w and returns the number of bytes written
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	cw := &countWriter{w: w}
	var err error
	switch opt.Format {
	case base.EtJPEG:
		q := opt.Quality
		if q == 0 {
			q = DefaultQuality
		}
		err = jpeg.Encode(cw, m, &jpeg.Options{Quality: int(q)})
	case base.EtPNG:
		err = png.Encode(cw, m)
	case base.EtBMP:
		err = bmp.Encode(cw, m)
	case base.EtTIFF:
		err = tiff.Encode(cw, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = ErrorFormat
	}
	return cw.n, err
}

// SaveFile writes m to dest, creating parent directories as needed
func SaveFile(dest string, m image.Image, opt WriteOption) (*Output, error) {
	if err := utils.ReadyDir(dest); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		return nil, err
	}
	h := hash.NewWriter()
	n, err := SaveTo(io.MultiWriter(f, h), m, opt)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err = f.Close(); err != nil {
		return nil, err
	}

	b := m.Bounds()
	return &Output{
		Path:   dest,
		Width:  b.Dx(),
		Height: b.Dy(),
		Size:   n,
		Digest: h.Sum(),
	}, nil
}
