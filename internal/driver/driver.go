// SPDX-License-Identifier: MIT

// Package driver is the thin layer between the CLI and the matrix package:
// it loads two operands, applies the selected operation and writes the
// result to an operation-named file. Errors from the matrix package are
// returned unchanged so the CLI can show them verbatim.
package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matrix"
)

// ErrUnknownOp is returned by ParseOp for selectors outside Ops.
var ErrUnknownOp = errors.New("invalid operation, choose 'add', 'subtract', or 'multiply'")

// Op selects one of the binary matrix operations.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
)

// Ops lists the supported operations in display order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply}

// ParseOp maps a case-insensitive selector to an Op.
func ParseOp(s string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Ops {
		if op == known {
			return op, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Apply runs the operation on a and b.
func (o Op) Apply(a, b *matrix.SparseMatrix) (*matrix.SparseMatrix, error) {
	switch o {
	case OpAdd:
		return matrix.Add(a, b)
	case OpSubtract:
		return matrix.Sub(a, b)
	case OpMultiply:
		return matrix.Mul(a, b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, string(o))
	}
}

// OutputName returns the configured result file name for the operation.
func (o Op) OutputName(cfg *config.Config) string {
	switch o {
	case OpAdd:
		return cfg.Outputs.Add
	case OpSubtract:
		return cfg.Outputs.Subtract
	default:
		return cfg.Outputs.Multiply
	}
}

// Result reports what Run produced.
type Result struct {
	Op         Op
	OutputPath string
	Rows, Cols int
	NNZ        int
	Bytes      int64
	Elapsed    time.Duration
}

// Runner executes operations against files using one configuration.
type Runner struct {
	cfg *config.Config
	log *zap.Logger
}

// NewRunner returns a Runner; a nil logger is replaced by zap.NewNop().
func NewRunner(cfg *config.Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{cfg: cfg, log: log}
}

// Load reads one operand with the configured parse options.
func (r *Runner) Load(path string) (*matrix.SparseMatrix, error) {
	opts := append(r.cfg.MatrixOptions(), matrix.WithLogger(r.log))

	return matrix.ReadFile(path, opts...)
}

// Run loads left and right, applies op and writes the result.
// output overrides the configured file name; a relative output is resolved
// against the configured output directory.
//
// The two operands are independent, so they are loaded concurrently; the
// first error wins and no result file is written.
func (r *Runner) Run(op Op, left, right, output string) (Result, error) {
	start := time.Now()

	var a, b *matrix.SparseMatrix
	var g errgroup.Group
	g.Go(func() error {
		m, err := r.Load(left)
		a = m

		return err
	})
	g.Go(func() error {
		m, err := r.Load(right)
		b = m

		return err
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res, err := op.Apply(a, b)
	if err != nil {
		return Result{}, err
	}

	path := r.outputPath(op, output)
	if err = res.WriteFile(path); err != nil {
		return Result{}, err
	}

	out := Result{
		Op:         op,
		OutputPath: path,
		Rows:       res.Rows(),
		Cols:       res.Cols(),
		NNZ:        res.NNZ(),
		Elapsed:    time.Since(start),
	}
	if st, statErr := os.Stat(path); statErr == nil {
		out.Bytes = st.Size()
	}

	r.log.Info("operation complete",
		zap.String("op", string(op)),
		zap.String("left", left),
		zap.String("right", right),
		zap.String("output", path),
		zap.Int("nnz", out.NNZ),
		zap.Duration("elapsed", out.Elapsed))

	return out, nil
}

// Describe loads path and summarizes it.
func (r *Runner) Describe(path string) (matrix.Summary, error) {
	m, err := r.Load(path)
	if err != nil {
		return matrix.Summary{}, err
	}

	return matrix.Summarize(m)
}

func (r *Runner) outputPath(op Op, output string) string {
	if output == "" {
		output = op.OutputName(r.cfg)
	}
	if filepath.IsAbs(output) {
		return output
	}

	return filepath.Join(r.cfg.OutputDir, output)
}
