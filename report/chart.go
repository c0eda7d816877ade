package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-imsto/dimstat/stats"
	"github.com/go-imsto/dimstat/utils"
)

var (
	skyblue = color.RGBA{135, 206, 235, 255}
	salmon  = color.RGBA{250, 128, 114, 255}
)

const (
	chartWidth  = 1200
	chartHeight = 500

	marginLeft   = 60
	marginRight  = 20
	marginTop    = 40
	marginBottom = 50
)

// PNGChart draws the height and width histograms side by side into a PNG file
type PNGChart struct {
	Path string
	Bins int
}

// Render ...
func (c PNGChart) Render(heights, widths []int) error {
	m := Chart(heights, widths, c.Bins)
	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		return err
	}
	if err := utils.SaveFile(c.Path, buf.Bytes()); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	logger().Infow("chart saved", "path", c.Path, "images", len(heights))
	return nil
}

// Chart draws both histogram panels on a white canvas
func Chart(heights, widths []int, bins int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	half := chartWidth / 2
	panel(dst, image.Rect(0, 0, half, chartHeight), stats.NewHistogram(heights, bins),
		skyblue, titleHeights, labelHeight)
	panel(dst, image.Rect(half, 0, chartWidth, chartHeight), stats.NewHistogram(widths, bins),
		salmon, titleWidths, labelWidth)
	return dst
}

func panel(dst draw.Image, r image.Rectangle, h stats.Histogram, fill color.Color, title, xlabel string) {
	plot := image.Rect(r.Min.X+marginLeft, r.Min.Y+marginTop, r.Max.X-marginRight, r.Max.Y-marginBottom)

	top := h.Max()
	n := len(h.Counts)
	if top > 0 && n > 0 {
		for i, count := range h.Counts {
			if count == 0 {
				continue
			}
			x0 := plot.Min.X + i*plot.Dx()/n
			x1 := plot.Min.X + (i+1)*plot.Dx()/n
			y0 := plot.Max.Y - count*plot.Dy()/top
			bar := image.Rect(x0, y0, x1, plot.Max.Y)
			fillRect(dst, bar, fill)
			strokeRect(dst, bar, color.Black)
		}
	}

	// axes
	fillRect(dst, image.Rect(plot.Min.X, plot.Max.Y, plot.Max.X, plot.Max.Y+1), color.Black)
	fillRect(dst, image.Rect(plot.Min.X-1, plot.Min.Y, plot.Min.X, plot.Max.Y+1), color.Black)

	center := (r.Min.X + r.Max.X) / 2
	drawText(dst, title, center, r.Min.Y+marginTop/2+5, true)
	drawText(dst, xlabel, (plot.Min.X+plot.Max.X)/2, plot.Max.Y+40, true)
	drawText(dst, labelCount, r.Min.X+5, plot.Min.Y-6, false)

	if len(h.Edges) > 1 {
		drawText(dst, fmt.Sprintf("%.0f", h.Edges[0]), plot.Min.X, plot.Max.Y+18, true)
		drawText(dst, fmt.Sprintf("%.0f", h.Edges[len(h.Edges)-1]), plot.Max.X, plot.Max.Y+18, true)
	}
	drawText(dst, "0", plot.Min.X-12, plot.Max.Y+4, false)
	drawText(dst, fmt.Sprint(top), r.Min.X+5, plot.Min.Y+10, false)
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(dst draw.Image, r image.Rectangle, c color.Color) {
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// drawText writes s with its baseline at y, starting at x or centered on x
func drawText(dst draw.Image, s string, x, y int, centered bool) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	if centered {
		x -= d.MeasureString(s).Ceil() / 2
	}
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}
