package t2048

// Size is the board dimension.
const Size = 4

// Grid is a Size x Size board. Zero means empty.
type Grid [Size][Size]int

// Cell addresses one position on the grid.
type Cell struct {
	Row int
	Col int
}

// reverseRow reverses a row.
func reverseRow(row [Size]int) [Size]int {
	var result [Size]int
	for i := range Size {
		result[i] = row[Size-1-i]
	}
	return result
}

// Reverse returns the grid with every row reversed.
func (g Grid) Reverse() Grid {
	var result Grid
	for r := range Size {
		result[r] = reverseRow(g[r])
	}
	return result
}

// Transpose returns the matrix transpose.
func (g Grid) Transpose() Grid {
	var result Grid
	for r := range Size {
		for c := range Size {
			result[r][c] = g[c][r]
		}
	}
	return result
}

// EmptyCells returns all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g Grid) HasEmptyCell() bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentEqual reports whether two horizontally or vertically adjacent
// cells hold the same value. Rows are checked before columns.
func (g Grid) HasAdjacentEqual() bool {
	for r := range Size {
		for c := range Size - 1 {
			if g[r][c] == g[r][c+1] {
				return true
			}
		}
	}
	for c := range Size {
		for r := range Size - 1 {
			if g[r][c] == g[r+1][c] {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the grid.
func (g Grid) CanMove() bool {
	return g.HasEmptyCell() || g.HasAdjacentEqual()
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			maxVal = max(maxVal, g[r][c])
		}
	}
	return maxVal
}

// Sum returns the sum of all tile values.
func (g Grid) Sum() int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += g[r][c]
		}
	}
	return total
}

// Reached reports whether any tile is at least target.
func (g Grid) Reached(target int) bool {
	return g.MaxTile() >= target
}
