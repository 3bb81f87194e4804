// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse store, the codec and the
// arithmetic kernels. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// coord is an ordered pair (row, col) used as the entry-store key.
// Using a comparable struct of ints keeps the key compact and hash-friendly.
// Complexity: O(1) to build and hash.
type coord struct {
	row int // row index, 0 ≤ row < rows
	col int // column index, 0 ≤ col < cols
}

// Entry is a single stored non-zero (row, col, value) triplet.
// It is the exported unit of ordered iteration (Entries) and of the text codec.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// Matrix represents a two-dimensional mutable array of float64 values.
// *SparseMatrix implements it; the interface is kept narrow so callers can
// substitute their own storage in read paths.
//
// Complexity notes: all methods are expected O(1) except Clone (O(nnz)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
