package report

// Sink receives the measured dimensions once all images are processed
type Sink interface {
	Render(heights, widths []int) error
}

// Nop renders nothing
type Nop struct{}

// Render ...
func (Nop) Render(heights, widths []int) error { return nil }

// Multi renders to every sink in order and stops at the first error
type Multi []Sink

// Render ...
func (m Multi) Render(heights, widths []int) error {
	for _, s := range m {
		if err := s.Render(heights, widths); err != nil {
			return err
		}
	}
	return nil
}

const (
	titleHeights = "Histogramme des hauteurs"
	titleWidths  = "Histogramme des largeurs"
	labelHeight  = "Hauteur (pixels)"
	labelWidth   = "Largeur (pixels)"
	labelCount   = "Nombre d'images"
)
