// SPDX-License-Identifier: MIT

package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matrix"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	diag2 = "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n"
	id2   = "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 1)\n"
)

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func newTestRunner(t *testing.T) (*Runner, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.OutputDir = dir

	return NewRunner(cfg, nil), dir
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]Op{"add": OpAdd, " Subtract ": OpSubtract, "MULTIPLY": OpMultiply} {
		got, err := ParseOp(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseOp("divide")
	require.ErrorIs(t, err, ErrUnknownOp)

	_, err = Op("divide").Apply(nil, nil)
	require.ErrorIs(t, err, ErrUnknownOp)
}

func TestRun_AllOperations(t *testing.T) {
	r, dir := newTestRunner(t)
	left := write(t, dir, "a.txt", diag2)
	right := write(t, dir, "b.txt", id2)

	cases := []struct {
		op   Op
		file string
		want string
	}{
		{OpAdd, "addition_result.txt", "rows=2\ncols=2\n(0, 0, 2)\n(1, 1, 3)\n"},
		{OpSubtract, "subtraction_result.txt", "rows=2\ncols=2\n(1, 1, 1)\n"},
		{OpMultiply, "multiplication_result.txt", diag2},
	}
	for _, tc := range cases {
		res, err := r.Run(tc.op, left, right, "")
		require.NoError(t, err, tc.op)
		require.Equal(t, filepath.Join(dir, tc.file), res.OutputPath)
		require.Equal(t, 2, res.Rows)
		require.Equal(t, 2, res.Cols)

		data, err := os.ReadFile(res.OutputPath)
		require.NoError(t, err)
		require.Equal(t, tc.want, string(data))
		require.Equal(t, int64(len(data)), res.Bytes)
	}
}

func TestRun_OutputOverride(t *testing.T) {
	r, dir := newTestRunner(t)
	left := write(t, dir, "a.txt", diag2)

	res, err := r.Run(OpAdd, left, left, "double.txt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "double.txt"), res.OutputPath)

	abs := filepath.Join(t.TempDir(), "abs.txt")
	res, err = r.Run(OpAdd, left, left, abs)
	require.NoError(t, err)
	require.Equal(t, abs, res.OutputPath)
}

func TestRun_ErrorsSurfaceUnchanged(t *testing.T) {
	r, dir := newTestRunner(t)
	good := write(t, dir, "a.txt", diag2)
	wide := write(t, dir, "wide.txt", "rows=2\ncols=3\n")
	bad := write(t, dir, "bad.txt", "rows=3\ncols=3\n(1, 2)\n")

	_, err := r.Run(OpAdd, good, wide, "")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = r.Run(OpMultiply, wide, good, "")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = r.Run(OpSubtract, good, bad, "")
	require.ErrorIs(t, err, matrix.ErrFormat)
	require.Contains(t, err.Error(), `line 3 "(1, 2)"`)

	_, err = r.Run(OpAdd, filepath.Join(dir, "nope.txt"), good, "")
	require.ErrorIs(t, err, matrix.ErrIO)

	// No result file for failed runs.
	_, statErr := os.Stat(filepath.Join(dir, "addition_result.txt"))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_LogsCompletion(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.OutputDir = dir
	r := NewRunner(cfg, zap.New(core))

	left := write(t, dir, "a.txt", diag2)
	_, err := r.Run(OpMultiply, left, left, "")
	require.NoError(t, err)

	entries := logs.FilterMessage("operation complete").All()
	require.Len(t, entries, 1)
	require.Equal(t, "multiply", entries[0].ContextMap()["op"])
	// Core diagnostics stay at debug level and are filtered out here.
	require.Zero(t, logs.FilterMessage("matrix: parsed").Len())
}

func TestDescribe(t *testing.T) {
	r, dir := newTestRunner(t)
	s, err := r.Describe(write(t, dir, "a.txt", diag2))
	require.NoError(t, err)
	require.Equal(t, matrix.Summary{
		Rows: 2, Cols: 2, NNZ: 2, Density: 0.5, Min: 1, Max: 2, Mean: 1.5, StdDev: 0.5,
	}, s)
}
