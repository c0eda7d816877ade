package stats

// DefaultBins ...
const DefaultBins = 30

// Histogram has len(Edges) == len(Counts)+1. Bin i covers
// [Edges[i], Edges[i+1]), the last one is closed on the right.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// NewHistogram spreads values over bins equal-width bins between their
// minimum and maximum. When all values are equal the range is widened by
// half a unit on each side.
func NewHistogram(values []int, bins int) Histogram {
	if bins <= 0 {
		bins = DefaultBins
	}
	h := Histogram{
		Edges:  make([]float64, bins+1),
		Counts: make([]int, bins),
	}
	if len(values) == 0 {
		for i := range h.Edges {
			h.Edges[i] = float64(i) / float64(bins)
		}
		return h
	}

	lo, hi := minMax(values)
	first, last := float64(lo), float64(hi)
	if lo == hi {
		first -= 0.5
		last += 0.5
	}
	width := (last - first) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = first + float64(i)*width
	}
	h.Edges[bins] = last

	for _, v := range values {
		i := int((float64(v) - first) / width)
		if i >= bins {
			i = bins - 1
		}
		if i < 0 {
			i = 0
		}
		h.Counts[i]++
	}
	return h
}

// Max returns the largest bin count
func (h Histogram) Max() int {
	var m int
	for _, c := range h.Counts {
		if c > m {
			m = c
		}
	}
	return m
}

// Total ...
func (h Histogram) Total() int {
	var t int
	for _, c := range h.Counts {
		t += c
	}
	return t
}
