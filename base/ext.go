package base

import (
	"strings"
)

// ImagExt ...
type ImagExt byte

const (
	EtNone ImagExt = iota
	EtJPEG
	EtPNG
	EtBMP
	EtTIFF
)

func (z ImagExt) String() string {
	switch z {
	case EtJPEG:
		return "jpeg"
	case EtPNG:
		return "png"
	case EtBMP:
		return "bmp"
	case EtTIFF:
		return "tiff"
	}
	return "unknown"
}

// Mime ...
func (z ImagExt) Mime() string {
	if z == EtNone {
		return ""
	}
	return "image/" + z.String()
}

// ParseExt accepts a file name, an extension or a format name
func ParseExt(s string) ImagExt {
	if pos := strings.LastIndex(s, "."); pos != -1 && pos < len(s) {
		s = s[pos+1:]
	}
	switch s {
	case "jpeg", "jpg":
		return EtJPEG
	case "png":
		return EtPNG
	case "bmp":
		return EtBMP
	case "tiff", "tif":
		return EtTIFF
	}
	return EtNone
}
