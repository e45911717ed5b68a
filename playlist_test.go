package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaylistNavigation(t *testing.T) {
	p := NewPlaylist([]string{"a", "b", "c"}, 0)

	assert.True(t, p.Previous())
	cur, _ := p.Current()
	assert.Equal(t, "c", cur, "previous from the first image wraps to the last")

	assert.True(t, p.Next())
	cur, _ = p.Current()
	assert.Equal(t, "a", cur, "next from the last image wraps to the first")

	for i := 0; i < 3; i++ {
		p.Next()
	}
	assert.Equal(t, 0, p.Index(), "len steps forward is a full cycle")

	p.Next()
	p.Previous()
	assert.Equal(t, 0, p.Index())
}

func TestPlaylistSingleImage(t *testing.T) {
	p := NewPlaylist([]string{"only"}, 0)
	assert.True(t, p.Next())
	assert.Equal(t, 0, p.Index())
	assert.True(t, p.Previous())
	assert.Equal(t, 0, p.Index())
}

func TestPlaylistEmpty(t *testing.T) {
	p := NewPlaylist(nil, 3)

	assert.Equal(t, 0, p.Index())
	assert.False(t, p.Next())
	assert.False(t, p.Previous())
	_, ok := p.Current()
	assert.False(t, ok)
}

func TestNewPlaylistClamps(t *testing.T) {
	assert.Equal(t, 2, NewPlaylist([]string{"a", "b", "c"}, 7).Index())
	assert.Equal(t, 0, NewPlaylist([]string{"a", "b", "c"}, -1).Index())
}

func TestPlaylistReplace(t *testing.T) {
	p := NewPlaylist([]string{"a", "b", "c", "d"}, 3)

	assert.False(t, p.Replace([]string{"a", "b", "c", "d"}), "identical list is not a change")
	assert.Equal(t, 3, p.Index())

	assert.True(t, p.Replace([]string{"a", "b"}))
	assert.Equal(t, 1, p.Index(), "index clamps to the shorter list")

	assert.True(t, p.Replace([]string{"x", "a", "b"}))
	assert.Equal(t, 1, p.Index(), "index is kept, not the file")
	cur, _ := p.Current()
	assert.Equal(t, "a", cur)

	assert.True(t, p.Replace(nil))
	assert.Equal(t, 0, p.Len())
	_, ok := p.Current()
	assert.False(t, ok)
}

func TestPlaylistCopies(t *testing.T) {
	src := []string{"a", "b"}
	p := NewPlaylist(src, 0)
	src[0] = "z"

	paths := p.Paths()
	assert.Equal(t, []string{"a", "b"}, paths)
	paths[1] = "y"
	assert.Equal(t, []string{"a", "b"}, p.Paths())
}
