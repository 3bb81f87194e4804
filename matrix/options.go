// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse matrices and the codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy (validateNaNInf) is carried by each matrix and inherited
//     by the results of Add/Sub/Mul/Transpose/Scale from the left operand.
//   - The logger is also inherited; it only ever receives Debug records.
//   - Read-ahead is off by default and affects ReadFile only; Read(io.Reader)
//     consumes the stream as given.
package matrix

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and parsing.
	DefaultValidateNaNInf = true
)

// Codec policy.
const (
	// DefaultReadAhead keeps ReadFile synchronous. WithReadAhead opts into an
	// asynchronous read-ahead reader so parsing overlaps with disk reads on
	// large inputs.
	DefaultReadAhead = false

	// DefaultReadAheadBuffers is the number of read-ahead buffers in flight.
	DefaultReadAheadBuffers = 4

	// DefaultReadAheadSize is the size in bytes of each read-ahead buffer.
	DefaultReadAheadSize = 1 << 20

	// MaxLineBytes bounds a single line of the text format.
	MaxLineBytes = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicReadAheadInvalid = "matrix: WithReadAhead: buffers and size must be > 0"
	panicLoggerNil        = "matrix: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	// numeric policy
	validateNaNInf bool // DefaultValidateNaNInf

	// codec policy
	readAhead        bool // DefaultReadAhead
	readAheadBuffers int  // DefaultReadAheadBuffers
	readAheadSize    int  // DefaultReadAheadSize

	// diagnostics
	logger *zap.Logger // zap.NewNop() unless WithLogger
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation (default).
//
// Behavior highlights:
//   - Set rejects NaN and ±Inf with ErrNaNInf.
//   - The parser rejects non-finite values with a *FormatError wrapping ErrNaNInf.
//   - Arithmetic results overflowing to ±Inf surface as ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// NaN is never equal to zero, so it is stored like any other non-zero value.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithReadAhead enables asynchronous read-ahead in ReadFile with the given
// number of buffers of size bytes each.
//
// Errors:
//   - Panics with a stable message when buffers <= 0 or size <= 0.
func WithReadAhead(buffers, size int) Option {
	if buffers <= 0 || size <= 0 {
		panic(panicReadAheadInvalid)
	}

	return func(o *Options) {
		o.readAhead = true
		o.readAheadBuffers = buffers
		o.readAheadSize = size
	}
}

// WithNoReadAhead makes ReadFile parse straight from the *os.File.
func WithNoReadAhead() Option {
	return func(o *Options) { o.readAhead = false }
}

// WithLogger attaches a zap logger used for Debug-level diagnostics
// (parse summaries, multiplication index sizes). Errors are always returned,
// never only logged.
//
// Errors:
//   - Panics when l is nil; pass zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// ---------- Resolution ----------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for constructors and the codec.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf:   DefaultValidateNaNInf,
		readAhead:        DefaultReadAhead,
		readAheadBuffers: DefaultReadAheadBuffers,
		readAheadSize:    DefaultReadAheadSize,
		logger:           zap.NewNop(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
