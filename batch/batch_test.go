package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/nfnt/resize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-imsto/dimstat/image"
	"github.com/go-imsto/dimstat/image/imagetest"
	"github.com/go-imsto/dimstat/stats"
	"github.com/go-imsto/dimstat/utils"
)

type captureSink struct {
	heights, widths []int
	calls           int
}

func (c *captureSink) Render(heights, widths []int) error {
	c.calls++
	c.heights = heights
	c.widths = widths
	return nil
}

func newOptions(t *testing.T, buf *bytes.Buffer) Options {
	return Options{
		InputDir:  t.TempDir(),
		OutputDir: filepath.Join(t.TempDir(), "out", "256"),
		Width:     256,
		Height:    256,
		Interp:    resize.Bilinear,
		Out:       buf,
	}
}

func listDir(t *testing.T, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	imagetest.Write(t, opt.InputDir, "a.jpg", 100, 100)
	imagetest.Write(t, opt.InputDir, "b.png", 200, 100)
	imagetest.Write(t, opt.InputDir, "c.bmp", 100, 300)
	imagetest.Write(t, opt.InputDir, "d.tiff", 1, 1)

	sink := &captureSink{}
	res, err := Run(opt, sink)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Found)
	assert.Len(t, res.Records, 4)
	assert.Len(t, res.Outputs, 4)
	assert.Empty(t, res.Failed)
	assert.Equal(t, []string{"a.jpg", "b.png", "c.bmp", "d.tiff"}, listDir(t, opt.OutputDir))

	for _, o := range res.Outputs {
		im, err := image.Open(o.Path)
		require.NoError(t, err)
		assert.Equal(t, 256, int(im.Width), o.Path)
		assert.Equal(t, 256, int(im.Height), o.Path)
	}

	assert.Equal(t, 4, res.Stats.Count)
	assert.Equal(t, 1, sink.calls)
	assert.ElementsMatch(t, []int{100, 100, 300, 1}, sink.heights)
	assert.ElementsMatch(t, []int{100, 200, 100, 1}, sink.widths)

	out := buf.String()
	assert.Contains(t, out, "Nombre d'images analysées : 4\n")
	assert.Contains(t, out, "Hauteur maximale : 300\n")
	assert.Contains(t, out, "Largeur minimale : 1\n")
	assert.Contains(t, out, "Les images redimensionnées ont été sauvegardées dans : "+opt.OutputDir)
}

func TestRunAverageArea(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	// width x height
	imagetest.Write(t, opt.InputDir, "a.png", 100, 100)
	imagetest.Write(t, opt.InputDir, "b.png", 200, 100)
	imagetest.Write(t, opt.InputDir, "c.png", 100, 300)

	res, err := Run(opt, nil)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, res.Stats.AverageArea)
	assert.Contains(t, buf.String(), "Dimension moyenne (aire) : 20000.00\n")
}

func TestRunMedianHeight(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	for i, h := range []int{100, 200, 300, 400} {
		imagetest.Write(t, opt.InputDir, string(rune('a'+i))+".png", 10, h)
	}

	res, err := Run(opt, nil)
	require.NoError(t, err)
	assert.Equal(t, 250.0, res.Stats.MedianHeight)
	assert.Contains(t, buf.String(), "Hauteur médiane : 250.00\n")
}

func TestRunNoInput(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)

	res, err := Run(opt, nil)
	assert.ErrorIs(t, err, image.ErrNoInputFiles)
	assert.Nil(t, res)
	assert.False(t, utils.Exists(opt.OutputDir))
	assert.Equal(t, "Aucune image trouvée dans le dossier : "+opt.InputDir+"\n", buf.String())

	buf.Reset()
	opt.InputDir = filepath.Join(opt.InputDir, "missing")
	_, err = Run(opt, nil)
	assert.ErrorIs(t, err, image.ErrNoInputFiles)
	assert.False(t, utils.Exists(opt.OutputDir))
	assert.Contains(t, buf.String(), "Aucune image trouvée")
}

func TestRunCorrupt(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	imagetest.Write(t, opt.InputDir, "good.jpg", 320, 240)
	imagetest.Corrupt(t, opt.InputDir, "bad.png")

	sink := &captureSink{}
	res, err := Run(opt, sink)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Found)
	require.Len(t, res.Records, 1)
	assert.Equal(t, stats.NewRecord("good.jpg", 320, 240), res.Records[0])
	assert.Len(t, res.Outputs, 1)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, filepath.Join(opt.InputDir, "bad.png"), res.Failed[0].Path)
	assert.Equal(t, []string{"good.jpg"}, listDir(t, opt.OutputDir))

	assert.Equal(t, 1, res.Stats.Count)
	assert.Equal(t, 76800.0, res.Stats.AverageArea)
	assert.Equal(t, []int{240}, sink.heights)
}

func TestRunAllInvalid(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	imagetest.Corrupt(t, opt.InputDir, "bad.png")
	imagetest.WriteBytes(t, opt.InputDir, "empty.jpg", nil)

	sink := &captureSink{}
	res, err := Run(opt, sink)
	assert.ErrorIs(t, err, stats.ErrNoValidImages)
	require.NotNil(t, res)
	assert.Nil(t, res.Stats)
	assert.Len(t, res.Failed, 2)
	assert.Zero(t, sink.calls)
	assert.Empty(t, listDir(t, opt.OutputDir))
	assert.Equal(t, "Aucune image valide trouvée.\n", buf.String())
}

func TestRunIdempotent(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	imagetest.Write(t, opt.InputDir, "a.jpg", 640, 480)
	imagetest.Write(t, opt.InputDir, "b.png", 33, 999)

	first, err := Run(opt, nil)
	require.NoError(t, err)
	names := listDir(t, opt.OutputDir)

	second, err := Run(opt, nil)
	require.NoError(t, err)
	assert.Equal(t, names, listDir(t, opt.OutputDir))
	assert.Equal(t, first.Outputs, second.Outputs)
	assert.Equal(t, first.Stats, second.Stats)
}

func TestRunKeepsExtensions(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	imagetest.Write(t, opt.InputDir, "photo.jpg", 50, 50)
	imagetest.Write(t, opt.InputDir, "photo.png", 60, 60)

	res, err := Run(opt, nil)
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.Len(t, res.Outputs, 2)
	assert.Equal(t, []string{"photo.jpg", "photo.png"}, listDir(t, opt.OutputDir))
}

func TestRunDryRun(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	opt.DryRun = true
	opt.Width, opt.Height = 0, 0
	imagetest.Write(t, opt.InputDir, "a.jpg", 64, 48)

	res, err := Run(opt, nil)
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
	assert.Empty(t, res.Outputs)
	assert.False(t, utils.Exists(opt.OutputDir))
	assert.NotContains(t, buf.String(), "sauvegardées")
}

func TestRunBadTarget(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	opt.Height = 0
	imagetest.Write(t, opt.InputDir, "a.jpg", 64, 48)

	_, err := Run(opt, nil)
	assert.ErrorIs(t, err, image.ErrTargetSize)
	assert.False(t, utils.Exists(opt.OutputDir))
}

func TestRunUnwritable(t *testing.T) {
	var buf bytes.Buffer
	opt := newOptions(t, &buf)
	imagetest.Write(t, opt.InputDir, "a.jpg", 64, 48)
	// a regular file where the output directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	opt.OutputDir = filepath.Join(blocker, "out")

	_, err := Run(opt, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, image.ErrNoInputFiles)
	assert.NotErrorIs(t, err, stats.ErrNoValidImages)
}
