// SPDX-License-Identifier: MIT

// Package matrix - gonum interoperability.
//
// Purpose:
//   - Expose a SparseMatrix to gonum/mat consumers without copying (Gonum view).
//   - Materialise a *mat.Dense for pipelines that need dense kernels (ToDense).
//   - Ingest any mat.Matrix, skipping zeros (FromMatrix).
//
// Notes:
//   - The sparse algebra in methods.go never goes through these conversions.
//   - The view follows gonum conventions: At panics on out-of-range indices.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// gonumView adapts *SparseMatrix to mat.Matrix and mat.NonZeroDoer.
type gonumView struct{ m *SparseMatrix }

var (
	_ mat.Matrix      = gonumView{}
	_ mat.NonZeroDoer = gonumView{}
)

// Dims returns the declared shape.
func (v gonumView) Dims() (r, c int) { return v.m.rows, v.m.cols }

// At returns the element at (i, j) and panics with mat.ErrIndexOutOfRange
// outside the shape, as gonum matrices do.
func (v gonumView) At(i, j int) float64 {
	if !inBounds(i, j, v.m.rows, v.m.cols) {
		panic(mat.ErrIndexOutOfRange)
	}

	return v.m.entries[coord{i, j}]
}

// T returns the implicit transpose.
func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// DoNonZero visits stored entries only, in unspecified order.
func (v gonumView) DoNonZero(fn func(i, j int, val float64)) {
	for k, val := range v.m.entries {
		fn(k.row, k.col, val)
	}
}

// Gonum returns a read-only mat.Matrix view backed by m's entry store.
// Later mutations of m are visible through the view.
func (m *SparseMatrix) Gonum() mat.Matrix { return gonumView{m: m} }

// ToDense copies m into a new *mat.Dense.
// gonum forbids zero-sized dense matrices, so a 0×N or N×0 matrix yields nil.
// Complexity: O(rows*cols) memory, O(nnz) writes.
func (m *SparseMatrix) ToDense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for k, v := range m.entries {
		d.Set(k.row, k.col, v)
	}

	return d
}

// FromMatrix builds a SparseMatrix holding the non-zero elements of src.
//
// Implementation:
//   - Stage 1: read the shape via Dims.
//   - Stage 2: if src implements mat.NonZeroDoer, visit only its non-zeros;
//     otherwise scan every cell.
//   - Stage 3: store through Set (zero-elision, numeric policy).
//
// Errors:
//   - ErrNaNInf under the default policy when src holds a non-finite value.
//
// Complexity:
//   - O(nnz) with NonZeroDoer, O(rows*cols) otherwise.
func FromMatrix(src mat.Matrix, opts ...Option) (*SparseMatrix, error) {
	r, c := src.Dims()
	m, err := NewSparse(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	if nz, ok := src.(mat.NonZeroDoer); ok {
		var setErr error
		nz.DoNonZero(func(i, j int, v float64) {
			if setErr == nil {
				setErr = m.Set(i, j, v)
			}
		})
		if setErr != nil {
			return nil, fmt.Errorf("FromMatrix: %w", setErr)
		}

		return m, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, src.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromMatrix: %w", err)
			}
		}
	}

	return m, nil
}
