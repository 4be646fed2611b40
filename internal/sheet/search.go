package sheet

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/five82/gridsheet/internal/grid"
)

// minFuzzyQuery is the shortest query that falls back to fuzzy matching.
const minFuzzyQuery = 3

// Find locates the first cell, in row-major order, whose text contains query
// case-insensitively. When no cell contains it, the cell holding the closest
// word by edit distance is returned if it is within tolerance.
func (s Sheet) Find(query string) (grid.Coordinate, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return grid.Coordinate{}, false
	}

	dims := s.Dimensions()
	for row := 1; row <= len(s.records); row++ {
		for col := 0; col < dims.Cols; col++ {
			if strings.Contains(strings.ToLower(s.Cell(row, col)), q) {
				return grid.Coordinate{Row: row, Col: col}, true
			}
		}
	}

	if len([]rune(q)) < minFuzzyQuery {
		return grid.Coordinate{}, false
	}
	limit := fuzzyTolerance(q)
	best := grid.Coordinate{}
	bestDist := limit + 1
	for row := 1; row <= len(s.records); row++ {
		for col := 1; col < dims.Cols; col++ {
			if d := closestWord(q, s.Cell(row, col)); d < bestDist {
				best = grid.Coordinate{Row: row, Col: col}
				bestDist = d
			}
		}
	}
	return best, bestDist <= limit
}

func fuzzyTolerance(q string) int {
	return max(2, len([]rune(q))/3)
}

// closestWord returns the smallest edit distance between q and the whole
// cell text or any of its words.
func closestWord(q, text string) int {
	text = strings.ToLower(text)
	best := levenshtein.ComputeDistance(q, text)
	for _, word := range strings.Fields(text) {
		if d := levenshtein.ComputeDistance(q, word); d < best {
			best = d
		}
	}
	return best
}
