// Package matrix offers a sparse matrix (dictionary of keys) with a text codec
// and sparse algebra.
//
// The matrix package provides:
//
//   - SparseMatrix: a rows×cols matrix storing only non-zero float64 entries
//     in a map keyed by (row, col). Set is the single mutator and elides zeros.
//   - Read / ReadFile / WriteTo / WriteFile for the line-oriented format
//     "rows=N", "cols=M", "(row, col, value)".
//   - Add, Sub and Mul in O(nnz) sweeps; Mul indexes the right operand by the
//     contraction dimension instead of pairing every non-zero with every other.
//   - Transpose, Scale, Summarize and gonum interop (Gonum, ToDense, FromMatrix).
//
// Policies (fixed for the whole package):
//
//   - Values are float64; zero-elision uses exact equality with 0.
//   - Out-of-range coordinates are errors (ErrOutOfRange) for At, Set and parsing.
//   - NaN/±Inf are rejected unless WithNoValidateNaNInf is given.
//
// See the examples in this package for usage patterns.
package matrix
