package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test data for sorting strategies
func getTestImagePaths() []string {
	return []string{
		"test/01.png",
		"test/04.gif",
		"test/08.png",
		"test/09.png",
		"test/2.png",
		"test/３.png",
	}
}

func TestNameSortStrategy(t *testing.T) {
	strategy := &NameSortStrategy{}

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, "name", strategy.Name())
		assert.Equal(t, SortName, strategy.ID())
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		result := strategy.Sort([]string{"dir/c.GIF", "dir/B.png", "dir/a.jpg"})
		assert.Equal(t, []string{"dir/a.jpg", "dir/B.png", "dir/c.GIF"}, result)
	})

	t.Run("ExtensionStripped", func(t *testing.T) {
		// "a" sorts before "a-1" once the extension is gone, although
		// '-' < '.' byte-wise.
		result := strategy.Sort([]string{"dir/a-1.png", "dir/a.png"})
		assert.Equal(t, []string{"dir/a.png", "dir/a-1.png"}, result)
	})

	t.Run("SharedStemUsesFullPath", func(t *testing.T) {
		result := strategy.Sort([]string{"dir/a.png", "dir/a.jpg", "dir/A.gif"})
		assert.Equal(t, []string{"dir/A.gif", "dir/a.jpg", "dir/a.png"}, result)
	})

	t.Run("Lexicographic", func(t *testing.T) {
		result := strategy.Sort(getTestImagePaths())
		assert.Equal(t, getTestImagePaths(), result)
	})
}

func TestNaturalSortStrategy(t *testing.T) {
	strategy := &NaturalSortStrategy{}

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, "natural", strategy.Name())
		assert.Equal(t, SortNatural, strategy.ID())
	})

	t.Run("Sort", func(t *testing.T) {
		expected := []string{
			"test/01.png",
			"test/2.png",
			"test/04.gif",
			"test/08.png",
			"test/09.png",
			"test/３.png",
		}
		assert.Equal(t, expected, strategy.Sort(getTestImagePaths()))
	})
}

func TestSimpleSortStrategy(t *testing.T) {
	strategy := &SimpleSortStrategy{}

	assert.Equal(t, "simple", strategy.Name())
	assert.Equal(t, SortSimple, strategy.ID())
	assert.Equal(t,
		[]string{"dir/B.png", "dir/a-1.png", "dir/a.png"},
		strategy.Sort([]string{"dir/a.png", "dir/a-1.png", "dir/B.png"}))
}

func TestSortStrategiesKeepInput(t *testing.T) {
	for _, strategy := range GetAllSortStrategies() {
		t.Run(strategy.Name(), func(t *testing.T) {
			input := []string{"z.png", "y.png", "x.png"}
			_ = strategy.Sort(input)
			assert.Equal(t, []string{"z.png", "y.png", "x.png"}, input, "input slice was modified")

			assert.Empty(t, strategy.Sort(nil))
			assert.Equal(t, []string{"only.png"}, strategy.Sort([]string{"only.png"}))
		})
	}
}

func TestGetSortStrategy(t *testing.T) {
	tests := []struct {
		sortMethod   int
		expectedName string
	}{
		{SortName, "name"},
		{SortNatural, "natural"},
		{SortSimple, "simple"},
		{999, "name"}, // Default fallback
	}

	for _, tt := range tests {
		t.Run(tt.expectedName, func(t *testing.T) {
			assert.Equal(t, tt.expectedName, GetSortStrategy(tt.sortMethod).Name())
		})
	}
}

func TestSortMethodByName(t *testing.T) {
	id, ok := sortMethodByName("Natural")
	assert.True(t, ok)
	assert.Equal(t, SortNatural, id)

	id, ok = sortMethodByName("random")
	assert.False(t, ok)
	assert.Equal(t, SortName, id)
}
