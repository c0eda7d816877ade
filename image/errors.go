package image

import (
	"errors"
)

var (
	ErrorFormat     = errors.New("Invalid or unsupported Image Format")
	ErrNoInputFiles = errors.New("no image files found")
	ErrTargetSize   = errors.New("target size must be positive")
)
