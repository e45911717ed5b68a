package main

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// SortStrategy defines the interface for different sorting strategies
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original
	Sort(paths []string) []string
	// Name returns the flag value selecting the strategy
	Name() string
	// ID returns the numeric identifier used by Config
	ID() int
}

// sortKey is the lowercase path with its extension stripped.
func sortKey(path string) string {
	return strings.ToLower(strings.TrimSuffix(path, filepath.Ext(path)))
}

func sortedCopy(paths []string, less func(a, b string) bool) []string {
	if len(paths) == 0 {
		return []string{}
	}

	result := make([]string, len(paths))
	copy(result, paths)

	sort.Slice(result, func(i, j int) bool {
		return less(result[i], result[j])
	})

	return result
}

// NameSortStrategy orders case-insensitively by path without extension.
// Files sharing a stem (a.png, a.jpg) fall back to the full path so the
// order is stable between scans.
type NameSortStrategy struct{}

func (s *NameSortStrategy) Sort(paths []string) []string {
	return sortedCopy(paths, func(a, b string) bool {
		ka, kb := sortKey(a), sortKey(b)
		if ka != kb {
			return ka < kb
		}
		return a < b
	})
}

func (s *NameSortStrategy) Name() string {
	return "name"
}

func (s *NameSortStrategy) ID() int {
	return SortName
}

// NaturalSortStrategy implements natural sorting using maruel/natural
type NaturalSortStrategy struct{}

func (s *NaturalSortStrategy) Sort(paths []string) []string {
	return sortedCopy(paths, func(a, b string) bool {
		ka, kb := sortKey(a), sortKey(b)
		if ka != kb {
			return natural.Less(ka, kb)
		}
		return a < b
	})
}

func (s *NaturalSortStrategy) Name() string {
	return "natural"
}

func (s *NaturalSortStrategy) ID() int {
	return SortNatural
}

// SimpleSortStrategy implements lexicographical sorting
type SimpleSortStrategy struct{}

func (s *SimpleSortStrategy) Sort(paths []string) []string {
	return sortedCopy(paths, func(a, b string) bool {
		return a < b
	})
}

func (s *SimpleSortStrategy) Name() string {
	return "simple"
}

func (s *SimpleSortStrategy) ID() int {
	return SortSimple
}

// GetSortStrategy returns the appropriate strategy based on the sort method ID
func GetSortStrategy(sortMethod int) SortStrategy {
	switch sortMethod {
	case SortName:
		return &NameSortStrategy{}
	case SortNatural:
		return &NaturalSortStrategy{}
	case SortSimple:
		return &SimpleSortStrategy{}
	default:
		return &NameSortStrategy{} // Default fallback
	}
}

// GetAllSortStrategies returns all available sort strategies
func GetAllSortStrategies() []SortStrategy {
	return []SortStrategy{
		&NameSortStrategy{},
		&NaturalSortStrategy{},
		&SimpleSortStrategy{},
	}
}

// sortMethodByName resolves a --sort flag value.
func sortMethodByName(name string) (int, bool) {
	for _, s := range GetAllSortStrategies() {
		if s.Name() == strings.ToLower(name) {
			return s.ID(), true
		}
	}
	return SortName, false
}
