// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (dictionary of keys) & safe accessors.
//
// Purpose:
//   - Store only non-zero cells in a map keyed by coord{row, col}.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce zero-elision from a single mutator (Set): the map never holds 0.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Map iteration order is random; use Entries() whenever order matters
//     (serialization, diagnostics, tests).
//   - Range is the cheap unordered sweep used by the arithmetic kernels.
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set: O(1) expected; Clone: O(nnz); Entries: O(nnz log nnz).

package matrix

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

var nopLogger = zap.NewNop()

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// sparseErrorf wraps an error with a uniform SparseMatrix context and callsite indices.
// Produces "SparseMatrix.<method>(row,col): <sentinel text>"; the sentinel stays
// matchable via errors.Is.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SparseMatrix.%s(%d,%d): %w", method, row, col, err)
}

// SparseMatrix is a rows×cols matrix storing only its non-zero entries.
//   - rows, cols hold the declared shape (>= 0).
//   - entries maps coord → value; every key is in bounds and no value is 0.
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
//   - logger receives Debug diagnostics only.
//
// A SparseMatrix is not safe for concurrent mutation; independent matrices
// share no state. The zero value is an empty 0×0 matrix with NaN/Inf
// validation off.
type SparseMatrix struct {
	rows, cols     int
	entries        map[coord]float64
	validateNaNInf bool
	logger         *zap.Logger
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*SparseMatrix)(nil)
	_ fmt.Stringer = (*SparseMatrix)(nil)
)

// NewSparse creates an empty rows×cols sparse matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate an empty entry map.
//
// Behavior highlights:
//   - 0×N and N×0 are legal; such matrices can never hold entries.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewSparse(rows, cols int, opts ...Option) (*SparseMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newSparse(rows, cols, gatherOptions(opts...)), nil
}

// newSparse is the internal constructor; the caller guarantees rows, cols >= 0.
func newSparse(rows, cols int, o Options) *SparseMatrix {
	return &SparseMatrix{
		rows:           rows,
		cols:           cols,
		entries:        make(map[coord]float64),
		validateNaNInf: o.validateNaNInf,
		logger:         o.logger,
	}
}

// derive allocates an empty rows×cols result that inherits m's numeric
// policy and logger. Used by every operation that produces a new matrix.
func (m *SparseMatrix) derive(rows, cols int) *SparseMatrix {
	return &SparseMatrix{
		rows:           rows,
		cols:           cols,
		entries:        make(map[coord]float64),
		validateNaNInf: m.validateNaNInf,
		logger:         m.log(),
	}
}

// log returns m's logger, or a no-op logger for a zero-value matrix.
func (m *SparseMatrix) log() *zap.Logger {
	if m.logger == nil {
		return nopLogger
	}

	return m.logger
}

// Rows returns the declared row count.
func (m *SparseMatrix) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *SparseMatrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *SparseMatrix) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) entries.
func (m *SparseMatrix) NNZ() int { return len(m.entries) }

// At returns the value at (row, col): the stored value, or 0 when absent.
//
// Errors:
//   - ErrOutOfRange when row or col is outside the declared shape.
//
// Complexity:
//   - Time O(1) expected, Space O(1).
func (m *SparseMatrix) At(row, col int) (float64, error) {
	if !inBounds(row, col, m.rows, m.cols) {
		return 0, sparseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.entries[coord{row, col}], nil // absent key yields the zero value
}

// Set stores v at (row, col). This is the only mutator of the entry store.
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: v == 0 deletes the key (no-op when absent); otherwise insert/overwrite.
//
// Behavior highlights:
//   - -0.0 compares equal to 0 and is elided as well.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1) expected, Space O(1) amortized.
func (m *SparseMatrix) Set(row, col int, v float64) error {
	if !inBounds(row, col, m.rows, m.cols) {
		return sparseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	if v == 0 {
		delete(m.entries, coord{row, col})

		return nil
	}
	m.entries[coord{row, col}] = v

	return nil
}

// Clone returns a deep copy (new map, same shape, policy and logger).
// The dynamic type of the result is *SparseMatrix.
// Complexity: O(nnz).
func (m *SparseMatrix) Clone() Matrix { return m.clone() }

func (m *SparseMatrix) clone() *SparseMatrix {
	cp := m.derive(m.rows, m.cols)
	for k, v := range m.entries {
		cp.entries[k] = v
	}

	return cp
}

// Range calls fn for every stored entry in unspecified order until fn
// returns false. fn must not mutate m.
// Complexity: O(nnz).
func (m *SparseMatrix) Range(fn func(row, col int, v float64) bool) {
	for k, v := range m.entries {
		if !fn(k.row, k.col, v) {
			return
		}
	}
}

// Entries returns the stored entries ordered row-major (row asc, then col asc).
// The slice is freshly allocated; mutating it does not affect m.
// Complexity: O(nnz log nnz).
func (m *SparseMatrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.row, Col: k.col, Value: v})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}

		return cmp.Compare(a.Col, b.Col)
	})

	return out
}

// Equal reports whether m and other have the same shape and exactly the same
// stored entries. Two nil matrices are equal.
// Complexity: O(nnz).
func (m *SparseMatrix) Equal(other *SparseMatrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.entries) != len(other.entries) {
		return false
	}
	for k, v := range m.entries {
		w, ok := other.entries[k]
		if !ok || w != v {
			return false
		}
	}

	return true
}

// String renders shape, nnz and the row-major entry list for diagnostics.
// Not intended for hot paths.
func (m *SparseMatrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SparseMatrix(%dx%d, nnz=%d)", m.rows, m.cols, len(m.entries))
	for _, e := range m.Entries() {
		sb.WriteString("\n")
		sb.WriteString(formatEntry(e))
	}

	return sb.String()
}
