// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors and the one structured
// error type (FormatError) used across the matrix package. Callers and tests
// match them via errors.Is / errors.As. No public function panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so that the CLI can print the
// error verbatim and still be grep-able. Context is attached with
// fmt.Errorf("Tag: %w", ErrX); callers keep matching with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> numeric policy -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// A 0×N or N×0 sparse matrix is legal (it simply holds no entries).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set and the parser return it; nothing clamps or skips silently.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, parsing, arithmetic results).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *SparseMatrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrFormat marks any structural violation of the text format.
	// Every *FormatError matches it via errors.Is.
	ErrFormat = errors.New("matrix: malformed input")

	// ErrIO marks failures of the underlying file or stream (missing,
	// unreadable, unwritable). The original os/io error stays in the chain.
	ErrIO = errors.New("matrix: i/o failure")
)

// Reasons carried by FormatError. Kept as constants so tests and callers do
// not depend on ad-hoc strings.
const (
	ReasonMissingHeader   = "missing rows= or cols= header"
	ReasonDuplicateHeader = "header appears more than once"
	ReasonBadHeader       = "header value must be a non-negative integer"
	ReasonDataBeforeShape = "data line before rows= and cols= headers"
	ReasonFieldCount      = "expected 3 comma-separated fields"
	ReasonBadIndex        = "row and column must be integers"
	ReasonBadValue        = "value must be numeric"
	ReasonOutOfBounds     = "coordinate outside declared shape"
	ReasonNonFinite       = "value must be finite"
	ReasonUnknownLine     = "unrecognized line"
	ReasonLineTooLong     = "line exceeds MaxLineBytes"
)

// FormatError describes a structural violation of the text format.
//   - Line is 1-based; 0 means the violation concerns the file as a whole
//     (e.g., a header that never appeared).
//   - Text is the offending line after trimming, empty when Line == 0.
//   - Err, when set, is a more specific sentinel (ErrOutOfRange, ErrNaNInf)
//     or the strconv error that triggered the violation.
type FormatError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

// Error renders "matrix: malformed input at line N "text": reason: cause".
func (e *FormatError) Error() string {
	msg := ErrFormat.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d %q", msg, e.Line, e.Text)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is reports ErrFormat equality so errors.Is(err, ErrFormat) holds for any *FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Unwrap exposes the specific cause (ErrOutOfRange, ErrNaNInf, *strconv.NumError).
func (e *FormatError) Unwrap() error { return e.Err }

// ioErrorf tags an underlying I/O failure with ErrIO while keeping the
// original error (e.g., *fs.PathError) matchable.
func ioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrIO, err)
}
