// Package input maps pointer positions onto grid cells.
package input

import "math"

// CellAt translates a pointer position into the (row, col) of the cell under it.
//
// Positions past the last row or column clamp to it:
//
//	row = min(floor(y/cellSize), height-1)
//	col = min(floor(x/cellSize), width-1)
//
// ok is false for negative positions, a non-positive cell size or an empty grid.
func CellAt(x, y, cellSize float64, height, width int) (row, col int, ok bool) {
	if cellSize <= 0 || height <= 0 || width <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(cellSize) {
		return 0, 0, false
	}
	row = clamp(y/cellSize, height-1)
	col = clamp(x/cellSize, width-1)
	return row, col, true
}

func clamp(v float64, limit int) int {
	f := math.Floor(v)
	if f >= float64(limit) {
		return limit
	}
	return int(f)
}
