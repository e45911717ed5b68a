package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// cachedImage is a decoded image together with the file state it came from.
type cachedImage struct {
	img     image.Image
	modTime time.Time
	size    int64
}

// FileImageLoader decodes images from disk and keeps the most recently used
// ones. An entry is reused only while the file's size and mtime are
// unchanged, so a file rewritten in place is decoded again.
type FileImageLoader struct {
	cache *lru.Cache[string, cachedImage]
	log   zerolog.Logger
}

// NewFileImageLoader creates a loader caching up to cacheSize images.
func NewFileImageLoader(cacheSize int, log zerolog.Logger) (*FileImageLoader, error) {
	cache, err := lru.New[string, cachedImage](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating image cache: %w", err)
	}
	return &FileImageLoader{
		cache: cache,
		log:   log.With().Str("component", "loader").Logger(),
	}, nil
}

func (l *FileImageLoader) Load(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if c, ok := l.cache.Get(path); ok && c.size == info.Size() && c.modTime.Equal(info.ModTime()) {
		l.log.Debug().Str("path", path).Int("cached", l.cache.Len()).Msg("cache hit")
		return c.img, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	l.cache.Add(path, cachedImage{img: img, modTime: info.ModTime(), size: info.Size()})
	l.log.Debug().
		Str("path", path).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Int("cached", l.cache.Len()).
		Msg("cache miss, decoded")
	return img, nil
}

// Len reports how many decoded images are cached.
func (l *FileImageLoader) Len() int {
	return l.cache.Len()
}
