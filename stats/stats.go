// Package stats aggregates image dimensions: extrema, medians, mean area and
// histogram bins.
package stats

import (
	"errors"
	"sort"
)

// ErrNoValidImages is returned when there is nothing to aggregate
var ErrNoValidImages = errors.New("no valid images")

// Record is the measurement of one decoded image
type Record struct {
	Name   string
	Height int
	Width  int
	Area   int
}

// NewRecord ...
func NewRecord(name string, width, height int) Record {
	return Record{Name: name, Height: height, Width: width, Area: width * height}
}

// Stats ...
type Stats struct {
	Count        int
	AverageArea  float64
	MedianHeight float64
	MedianWidth  float64
	MaxHeight    int
	MinHeight    int
	MaxWidth     int
	MinWidth     int
}

// Compute aggregates records. The result does not depend on their order.
func Compute(records []Record) (*Stats, error) {
	if len(records) == 0 {
		return nil, ErrNoValidImages
	}
	heights, widths := Heights(records), Widths(records)

	var sum float64
	for _, r := range records {
		sum += float64(r.Area)
	}

	s := &Stats{
		Count:        len(records),
		AverageArea:  sum / float64(len(records)),
		MedianHeight: Median(heights),
		MedianWidth:  Median(widths),
	}
	s.MinHeight, s.MaxHeight = minMax(heights)
	s.MinWidth, s.MaxWidth = minMax(widths)
	return s, nil
}

// Heights ...
func Heights(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Height
	}
	return out
}

// Widths ...
func Widths(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Width
	}
	return out
}

// Median of values, the mean of the two central values for an even count.
// values is not modified; an empty slice yields 0.
func Median(values []int) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

func minMax(values []int) (lo, hi int) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}
