// Package batch runs the discover, decode, resize, save and aggregate pipeline
// over one input directory.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nfnt/resize"

	"github.com/go-imsto/dimstat/image"
	zlog "github.com/go-imsto/dimstat/log"
	"github.com/go-imsto/dimstat/report"
	"github.com/go-imsto/dimstat/stats"
)

// Options ...
type Options struct {
	InputDir  string
	OutputDir string
	Width     uint
	Height    uint
	Interp    resize.InterpolationFunction
	Quality   image.Quality
	// DryRun measures only, nothing is written
	DryRun bool
	// Out receives the summary, os.Stdout when nil
	Out io.Writer
}

// Result ...
type Result struct {
	Found   int
	Records []stats.Record
	Outputs []image.Output
	Failed  []image.Result
	Stats   *stats.Stats
}

// Run processes every image under opt.InputDir. The returned error wraps
// image.ErrNoInputFiles or stats.ErrNoValidImages when there was nothing to
// do; both are reported on opt.Out before returning. Any failure to write
// output stops the run.
func Run(opt Options, sink report.Sink) (*Result, error) {
	out := opt.Out
	if out == nil {
		out = os.Stdout
	}
	if sink == nil {
		sink = report.Nop{}
	}
	ropt := image.ResizeOption{
		Width:       opt.Width,
		Height:      opt.Height,
		Interp:      opt.Interp,
		WriteOption: image.WriteOption{Quality: opt.Quality},
	}
	if !opt.DryRun {
		if opt.Width == 0 || opt.Height == 0 {
			return nil, fmt.Errorf("%w: %dx%d", image.ErrTargetSize, opt.Width, opt.Height)
		}
	}

	files, err := image.Discover(opt.InputDir)
	if err != nil {
		if errors.Is(err, image.ErrNoInputFiles) {
			report.NoImagesFound(out, opt.InputDir)
		}
		return nil, err
	}

	res := &Result{Found: len(files)}
	if !opt.DryRun {
		if err = os.MkdirAll(opt.OutputDir, os.FileMode(0755)); err != nil {
			return res, fmt.Errorf("create output dir: %w", err)
		}
	}

	for _, fpath := range files {
		r := image.Load(fpath)
		if !r.OK() {
			logger().Infow("skip", "path", fpath, "err", r.Err)
			res.Failed = append(res.Failed, r)
			continue
		}
		im := r.Image
		res.Records = append(res.Records, stats.NewRecord(im.Name, int(im.Width), int(im.Height)))
		if opt.DryRun {
			continue
		}

		// same base name and extension as the source
		o, err := image.ResizeTo(im, opt.OutputDir, ropt)
		if err != nil {
			return res, fmt.Errorf("resize %s: %w", fpath, err)
		}
		res.Outputs = append(res.Outputs, *o)
	}

	res.Stats, err = stats.Compute(res.Records)
	if err != nil {
		report.NoValidImages(out)
		return res, err
	}
	logger().Infow("analyzed", "found", res.Found, "valid", res.Stats.Count, "failed", len(res.Failed))

	if err = report.WriteSummary(out, res.Stats); err != nil {
		return res, err
	}
	if err = sink.Render(stats.Heights(res.Records), stats.Widths(res.Records)); err != nil {
		return res, fmt.Errorf("render: %w", err)
	}
	if !opt.DryRun {
		report.Saved(out, opt.OutputDir)
	}
	return res, nil
}

func logger() zlog.Logger {
	return zlog.Get()
}
