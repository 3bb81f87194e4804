// SPDX-License-Identifier: MIT

// Package matrix provides the sparse algebra: element-wise addition and
// subtraction, matrix multiplication, transpose and scalar scaling. All
// functions perform strict fail-fast validation, return a new matrix and
// never mutate their operands. Every write goes through Set, so results obey
// zero-elision and the numeric policy of the left operand.
package matrix

import (
	"fmt"

	"go.uber.org/zap"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new matrix containing the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate an empty result of the shared shape.
// Stage 3 (Execute): entries of a combined with b; then entries of b absent from a.
// Stage 4 (Finalize): return result.
// Complexity: O(nnz(a) + nnz(b)) time and memory; zero cells are never visited.
func Add(a, b *SparseMatrix) (*SparseMatrix, error) {
	return combine(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a new matrix containing the element-wise difference a - b.
// Same stages and complexity as Add; entries present only in b are negated.
func Sub(a, b *SparseMatrix) (*SparseMatrix, error) {
	return combine(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// combine is the two-pass sparse sweep shared by Add and Sub.
// op(x, 0) and op(0, y) give the identity-combined values for one-sided keys.
func combine(tag string, a, b *SparseMatrix, op func(x, y float64) float64) (*SparseMatrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res := a.derive(a.rows, a.cols)

	// Pass 1: every key of a; b contributes 0 when absent.
	for k, av := range a.entries {
		if err := res.Set(k.row, k.col, op(av, b.entries[k])); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}
	// Pass 2: keys only present in b.
	for k, bv := range b.entries {
		if _, seen := a.entries[k]; seen {
			continue
		}
		if err := res.Set(k.row, k.col, op(0, bv)); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}

	return res, nil
}

// rowValue is one (row, value) pair of the right operand, bucketed by the
// contraction index.
type rowValue struct {
	col int     // column of b, i.e. column of the result
	val float64 // b[k, col]
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: index b by its row coordinate (the contraction dimension):
//     bucket[k] = [(c, b[k,c]) ...], built in O(nnz(b)).
//   - Stage 3: for every (r, k, v1) of a and every (c, v2) in bucket[k],
//     accumulate res[r,c] = res.At(r,c) + v1*v2 through Set.
//
// Behavior highlights:
//   - Terms that cancel exactly remove the entry again (Set elides zero).
//   - Never falls back to a dense or nested nnz(a)×nnz(b) sweep.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; ErrNaNInf when a product or sum
//     overflows under the finite-value policy.
//
// Complexity:
//   - Time O(nnz(b) + Σ_{(r,k)∈a} |bucket[k]|), Space O(nnz(b) + nnz(result)).
func Mul(a, b *SparseMatrix) (*SparseMatrix, error) {
	if err := ValidateBinaryMul(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := a.derive(a.rows, b.cols)

	// Stage 2: contraction index over b.
	index := make(map[int][]rowValue, b.rows)
	for k, v := range b.entries {
		index[k.row] = append(index[k.row], rowValue{col: k.col, val: v})
	}
	a.log().Debug("matrix: multiply index built",
		zap.Int("left_nnz", len(a.entries)),
		zap.Int("right_nnz", len(b.entries)),
		zap.Int("buckets", len(index)))

	// Stage 3: accumulate through the zero-eliding mutator.
	for k, v1 := range a.entries {
		bucket, ok := index[k.col]
		if !ok {
			continue
		}
		for _, rv := range bucket {
			cur, err := res.At(k.row, rv.col)
			if err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			if err = res.Set(k.row, rv.col, cur+v1*rv.val); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with every entry (r, c) moved to (c, r).
// Complexity: O(nnz).
func Transpose(m *SparseMatrix) (*SparseMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := m.derive(m.cols, m.rows)
	for k, v := range m.entries {
		res.entries[coord{k.col, k.row}] = v // already non-zero, in bounds and policy-checked
	}

	return res, nil
}

// Scale returns alpha·m. alpha == 0 yields an empty matrix of the same shape.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha or a product is non-finite under the policy.
//
// Complexity: O(nnz).
func Scale(m *SparseMatrix, alpha float64) (*SparseMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if m.validateNaNInf && isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	res := m.derive(m.rows, m.cols)
	for k, v := range m.entries {
		if err := res.Set(k.row, k.col, alpha*v); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
	}

	return res, nil
}
