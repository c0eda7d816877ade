package cmd

import (
	"github.com/go-imsto/dimstat/batch"
	"github.com/go-imsto/dimstat/config"
	"github.com/go-imsto/dimstat/image"
	"github.com/go-imsto/dimstat/report"
	"github.com/go-imsto/dimstat/stats"
)

var cmdAnalyze = &Command{
	UsageLine: "analyze [-in DIR] [-out DIR] [-width 256] [-height 256] [-chart FILE]",
	Short:     "resize a folder of images and report their dimensions",
	Long: `
analyze reads every .jpg, .jpeg, .png, .bmp and .tiff file directly under the
input folder, resizes each one to width x height and saves it under the same
name into the output folder, then prints the count, mean area, median, min
and max height and width of the images that could be decoded.
Unreadable files are skipped. With -chart the height and width histograms are
drawn into a PNG file, with -hist they are printed.
`,
}

var (
	aInput, aOutput string
	aWidth, aHeight uint
	aChart, aInterp string
	aHist           bool
	aQuality        uint
)

func init() {
	cmdAnalyze.Run = runAnalyze
	cmdAnalyze.Flag.StringVar(&aInput, "in", config.Current.InputDir, "input folder")
	cmdAnalyze.Flag.StringVar(&aOutput, "out", config.Current.OutputDir, "output folder, created if missing")
	cmdAnalyze.Flag.UintVar(&aWidth, "width", config.Current.Width, "target width")
	cmdAnalyze.Flag.UintVar(&aHeight, "height", config.Current.Height, "target height")
	cmdAnalyze.Flag.StringVar(&aChart, "chart", config.Current.Chart, "histogram png file")
	cmdAnalyze.Flag.StringVar(&aInterp, "interp", config.Current.Interp, "interpolation: nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3")
	cmdAnalyze.Flag.BoolVar(&aHist, "hist", false, "print histogram bins")
	cmdAnalyze.Flag.UintVar(&aQuality, "q", uint(image.DefaultQuality), "jpeg quality")
}

func runAnalyze(args []string) bool {
	interp, err := image.ParseInterp(aInterp)
	if err != nil {
		errorf("%s", err)
		return false
	}
	if aQuality == 0 || aQuality > 100 {
		errorf("jpeg quality must be between 1 and 100")
		return false
	}
	logger().Debugw("analyze", "in", aInput, "out", aOutput, "width", aWidth, "height", aHeight)

	opt := batch.Options{
		InputDir:  aInput,
		OutputDir: aOutput,
		Width:     aWidth,
		Height:    aHeight,
		Interp:    interp,
		Quality:   image.Quality(aQuality),
		Out:       stdout,
	}
	_, err = batch.Run(opt, sinks(aChart, aHist))
	return finish(err)
}

func sinks(chart string, hist bool) report.Sink {
	var m report.Multi
	if hist {
		m = append(m, report.TextHist{W: stdout, Bins: stats.DefaultBins})
	}
	if chart != "" {
		m = append(m, report.PNGChart{Path: chart, Bins: stats.DefaultBins})
	}
	return m
}
