package image

import (
	"fmt"
	"sort"

	"github.com/nfnt/resize"
)

// DefaultInterp is bilinear, the common default of image resampling tools
const DefaultInterp = "bilinear"

var interps = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// ParseInterp looks up an interpolation function by name, empty means default
func ParseInterp(name string) (resize.InterpolationFunction, error) {
	if name == "" {
		name = DefaultInterp
	}
	if f, ok := interps[name]; ok {
		return f, nil
	}
	return resize.Bilinear, fmt.Errorf("unknown interpolation %q, want one of %v", name, InterpNames())
}

// InterpNames ...
func InterpNames() []string {
	names := make([]string, 0, len(interps))
	for k := range interps {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
