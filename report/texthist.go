package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-imsto/dimstat/stats"
)

// TextHist writes histogram bins as text lines
type TextHist struct {
	W    io.Writer
	Bins int
}

// Render ...
func (th TextHist) Render(heights, widths []int) error {
	if err := th.write(titleHeights, stats.NewHistogram(heights, th.Bins)); err != nil {
		return err
	}
	return th.write(titleWidths, stats.NewHistogram(widths, th.Bins))
}

func (th TextHist) write(title string, h stats.Histogram) error {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteByte('\n')
	for i, c := range h.Counts {
		closing := ")"
		if i == len(h.Counts)-1 {
			closing = "]"
		}
		fmt.Fprintf(&sb, "[%9.2f, %9.2f%s %d\n", h.Edges[i], h.Edges[i+1], closing, c)
	}
	_, err := io.WriteString(th.W, sb.String())
	return err
}
