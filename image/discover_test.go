package image

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-imsto/dimstat/image/imagetest"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.png", "c.jpg", "d.jpeg", "e.bmp", "f.tiff", "g.JPG", "h.gif", "notes.txt", ".hidden.jpg"} {
		imagetest.WriteBytes(t, dir, name, []byte("x"))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	imagetest.WriteBytes(t, filepath.Join(dir, "sub"), "deep.jpg", []byte("x"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.png"), 0755))

	files, err := Discover(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"c.jpg", "d.jpeg", "a.png", "b.png", "e.bmp", "f.tiff"}, names)
}

func TestDiscoverEmpty(t *testing.T) {
	dir := t.TempDir()
	imagetest.WriteBytes(t, dir, "readme.md", []byte("x"))

	files, err := Discover(dir)
	assert.ErrorIs(t, err, ErrNoInputFiles)
	assert.Empty(t, files)

	_, err = Discover(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrNoInputFiles)
}

func TestDiscoverUnreadable(t *testing.T) {
	orig := readDir
	readDir = func(string) ([]os.DirEntry, error) { return nil, os.ErrPermission }
	t.Cleanup(func() { readDir = orig })

	files, err := Discover(t.TempDir())
	assert.ErrorIs(t, err, ErrNoInputFiles)
	assert.Empty(t, files)
}
