// Package grid builds small integer grids, as a subject for nested sequence matching.
package grid

// Multiplication returns the rows×cols multiplication table starting at 1×1.
func Multiplication(rows, cols int) [][]int {
	table := make([][]int, rows)
	for r := range table {
		table[r] = make([]int, cols)
		for c := range table[r] {
			table[r][c] = (r + 1) * (c + 1)
		}
	}

	return table
}
