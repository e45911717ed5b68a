package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates an empty file and returns its path.
func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

func TestDirScannerMatches(t *testing.T) {
	s := NewDirScanner(SortName)

	for _, name := range []string{"a.png", "B.PNG", "c.jpg", "d.JPEG", "e.Gif", "/tmp/x/f.jpeg"} {
		assert.True(t, s.Matches(name), name)
	}
	for _, name := range []string{"notes.txt", "a.png.bak", "png", "a.webp", "a.bmp", ".hidden.png", "._a.jpg", "/tmp/x/.thumb.gif"} {
		assert.False(t, s.Matches(name), name)
	}
}

func TestDirScannerScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.jpg", "C.gif", "d.jpeg", "notes.txt", ".hidden.png", "._a.jpg"} {
		writeFile(t, dir, name)
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "e.png"), 0o755))

	images, err := NewDirScanner(SortName).Scan(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.PNG"),
		filepath.Join(dir, "C.gif"),
		filepath.Join(dir, "d.jpeg"),
	}
	assert.Equal(t, want, images)
}

func TestDirScannerScanMissing(t *testing.T) {
	_, err := NewDirScanner(SortName).Scan(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCollectImagesFromSameDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "1.png")
	start := writeFile(t, dir, "2.png")
	writeFile(t, dir, "3.png")
	notes := writeFile(t, dir, "notes.txt")
	hidden := writeFile(t, dir, "._2.png")

	t.Run("Start is located", func(t *testing.T) {
		images, idx, err := collectImagesFromSameDirectory(start, NewDirScanner(SortName))
		require.NoError(t, err)
		assert.Len(t, images, 3)
		assert.Equal(t, 1, idx)
		assert.Equal(t, start, images[idx])
	})

	t.Run("Unsupported start", func(t *testing.T) {
		_, _, err := collectImagesFromSameDirectory(notes, NewDirScanner(SortName))
		assert.ErrorIs(t, err, errUnsupportedStart)
	})

	t.Run("Hidden start", func(t *testing.T) {
		_, _, err := collectImagesFromSameDirectory(hidden, NewDirScanner(SortName))
		assert.ErrorIs(t, err, errUnsupportedStart)
	})

	t.Run("Relative path", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		images, idx, err := collectImagesFromSameDirectory("3.png", NewDirScanner(SortName))
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
		assert.Equal(t, "3.png", filepath.Base(images[idx]))
		assert.True(t, filepath.IsAbs(images[idx]))
	})
}
