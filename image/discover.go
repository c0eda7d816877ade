package image

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-imsto/dimstat/utils"
)

var readDir = os.ReadDir

// Discover lists the image files directly under dir, grouped by suffix in
// the order of Suffixes and sorted by name within a group. Subdirectories
// are not visited and hidden files are ignored.
func Discover(dir string) ([]string, error) {
	if !utils.IsDir(dir) {
		return nil, fmt.Errorf("%w: %s", ErrNoInputFiles, dir)
	}
	entries, err := readDir(dir)
	if err != nil {
		logger().Infow("read dir fail", "dir", dir, "err", err)
		return nil, fmt.Errorf("%w: %s: %s", ErrNoInputFiles, dir, err)
	}

	var files []string
	for _, suffix := range Suffixes {
		for _, ent := range entries {
			name := ent.Name()
			if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, suffix) {
				continue
			}
			fpath := filepath.Join(dir, name)
			if !utils.IsRegular(fpath) {
				continue
			}
			files = append(files, fpath)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputFiles, dir)
	}
	logger().Debugw("discovered", "dir", dir, "count", len(files))
	return files, nil
}
