package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// imagePattern matches the lowercase base names of supported images.
const imagePattern = "*.{png,jpg,jpeg,gif}"

var errUnsupportedStart = errors.New("not a supported image")

// DirScanner lists the images of a directory in display order.
type DirScanner struct {
	pattern glob.Glob
	sorter  SortStrategy
}

// NewDirScanner creates a scanner ordering files with the given sort method.
func NewDirScanner(sortMethod int) *DirScanner {
	return &DirScanner{
		pattern: glob.MustCompile(imagePattern),
		sorter:  GetSortStrategy(sortMethod),
	}
}

// Matches reports whether the file name has a supported extension,
// ignoring case. Hidden files never match.
func (s *DirScanner) Matches(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return s.pattern.Match(strings.ToLower(base))
}

// Scan returns the supported images directly inside dir. A missing
// directory yields an error wrapping fs.ErrNotExist.
func (s *DirScanner) Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !s.Matches(entry.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, entry.Name()))
	}

	return s.sorter.Sort(images), nil
}

// collectImagesFromSameDirectory scans the directory holding start and
// returns its images with the index of start among them.
func collectImagesFromSameDirectory(start string, scanner Scanner) ([]string, int, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, 0, err
	}

	images, err := scanner.Scan(filepath.Dir(abs))
	if err != nil {
		return nil, 0, err
	}

	idx := slices.Index(images, abs)
	if idx < 0 {
		return nil, 0, fmt.Errorf("%s: %w", start, errUnsupportedStart)
	}
	return images, idx, nil
}
