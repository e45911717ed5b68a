package main

import "slices"

// Playlist is the ordered image list of one directory and the position of
// the image on screen. The index stays in [0, Len()-1] while the list is
// non-empty.
type Playlist struct {
	paths []string
	idx   int
}

// NewPlaylist creates a playlist positioned at idx, clamped into range.
func NewPlaylist(paths []string, idx int) *Playlist {
	p := &Playlist{paths: slices.Clone(paths), idx: idx}
	p.clamp()
	return p
}

func (p *Playlist) clamp() {
	p.idx = max(min(p.idx, len(p.paths)-1), 0)
}

func (p *Playlist) Len() int {
	return len(p.paths)
}

func (p *Playlist) Index() int {
	return p.idx
}

// Current returns the path on screen, or false when the list is empty.
func (p *Playlist) Current() (string, bool) {
	if len(p.paths) == 0 {
		return "", false
	}
	return p.paths[p.idx], true
}

// Next moves forward one image, wrapping to the first.
func (p *Playlist) Next() bool {
	if len(p.paths) == 0 {
		return false
	}
	p.idx = (p.idx + 1) % len(p.paths)
	return true
}

// Previous moves back one image, wrapping to the last.
func (p *Playlist) Previous() bool {
	if len(p.paths) == 0 {
		return false
	}
	p.idx = (p.idx - 1 + len(p.paths)) % len(p.paths)
	return true
}

// Replace swaps in a freshly scanned list when it differs from the current
// one and reports whether it did. The index is kept, clamped to the new
// length.
func (p *Playlist) Replace(paths []string) bool {
	if slices.Equal(p.paths, paths) {
		return false
	}
	p.paths = slices.Clone(paths)
	p.clamp()
	return true
}

// Paths returns a copy of the list.
func (p *Playlist) Paths() []string {
	return slices.Clone(p.paths)
}
