// Package report prints run summaries and renders dimension histograms.
package report

import (
	"fmt"
	"io"

	"github.com/go-imsto/dimstat/stats"
)

// WriteSummary prints the statistics, one labelled value per line
func WriteSummary(w io.Writer, s *stats.Stats) error {
	_, err := fmt.Fprintf(w, `Nombre d'images analysées : %d
Dimension moyenne (aire) : %.2f
Hauteur médiane : %.2f
Largeur médiane : %.2f
Hauteur maximale : %d
Hauteur minimale : %d
Largeur maximale : %d
Largeur minimale : %d
`, s.Count, s.AverageArea, s.MedianHeight, s.MedianWidth,
		s.MaxHeight, s.MinHeight, s.MaxWidth, s.MinWidth)
	return err
}

// NoImagesFound ...
func NoImagesFound(w io.Writer, dir string) {
	fmt.Fprintln(w, "Aucune image trouvée dans le dossier :", dir)
}

// NoValidImages ...
func NoValidImages(w io.Writer) {
	fmt.Fprintln(w, "Aucune image valide trouvée.")
}

// Saved ...
func Saved(w io.Writer, dir string) {
	fmt.Fprintln(w, "Les images redimensionnées ont été sauvegardées dans :", dir)
}
