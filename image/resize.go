package image

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/nfnt/resize"

	"github.com/go-imsto/dimstat/base"
)

// ResizeOption ...
type ResizeOption struct {
	Width, Height uint
	Interp        resize.InterpolationFunction
	WriteOption
}

func (ropt ResizeOption) String() string {
	return fmt.Sprintf("%dx%d q%d", ropt.Width, ropt.Height, ropt.Quality)
}

func (ropt ResizeOption) validate() error {
	if ropt.Width == 0 || ropt.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrTargetSize, ropt.Width, ropt.Height)
	}
	return nil
}

// ResizeImage resamples img to exactly Width x Height, ignoring aspect ratio
func ResizeImage(img image.Image, ropt ResizeOption) (image.Image, error) {
	if err := ropt.validate(); err != nil {
		return nil, err
	}
	m := resize.Resize(ropt.Width, ropt.Height, img, ropt.Interp)
	if b := m.Bounds(); b.Dx() != int(ropt.Width) || b.Dy() != int(ropt.Height) {
		return nil, fmt.Errorf("resize got %dx%d, want %s", b.Dx(), b.Dy(), ropt)
	}
	return m, nil
}

// ResizeTo resamples im and saves it as dir/<source name>, encoded after
// the source extension.
func ResizeTo(im *Image, dir string, ropt ResizeOption) (*Output, error) {
	m, err := ResizeImage(im.m, ropt)
	if err != nil {
		return nil, err
	}
	dest := filepath.Join(dir, im.Name)
	opt := ropt.WriteOption
	if opt.Format == base.EtNone {
		opt.Format = base.ParseExt(im.Name)
	}
	out, err := SaveFile(dest, m, opt)
	if err != nil {
		return nil, err
	}
	logger().Debugw("resized", "src", im.Attr.String(), "dest", dest, "size", out.Size, "digest", out.Digest)
	return out, nil
}
