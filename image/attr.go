package image

import (
	"fmt"
)

type Dimension uint32
type Size int64
type Quality uint8

// Attr ...
type Attr struct {
	Width       Dimension `json:"width"`
	Height      Dimension `json:"height"`
	Size        Size      `json:"size"`
	Ext         string    `json:"ext,omitempty"`
	Mime        string    `json:"mime,omitempty"`
	Format      string    `json:"format,omitempty"`
	Name        string    `json:"name,omitempty"`
	Orientation int       `json:"orientation,omitempty"`
}

// Area is width times height, in pixels
func (a Attr) Area() int {
	return int(a.Width) * int(a.Height)
}

func (a Attr) String() string {
	return fmt.Sprintf("%s %dx%d %s", a.Name, a.Width, a.Height, a.Format)
}

// NewAttr ...
func NewAttr(w, h uint) *Attr {
	return &Attr{
		Width:  Dimension(w),
		Height: Dimension(h),
	}
}
