// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/sparsemat/matrix"
)

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "matrix: WithReadAhead: buffers and size must be > 0",
		func() { matrix.WithReadAhead(0, 1) })
	require.PanicsWithValue(t, "matrix: WithReadAhead: buffers and size must be > 0",
		func() { matrix.WithReadAhead(1, -1) })
	require.PanicsWithValue(t, "matrix: WithLogger: logger must be non-nil",
		func() { matrix.WithLogger(nil) })
}

func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSparse(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestOptions_LoggerReceivesDebug(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	a, err := matrix.Read(strings.NewReader("rows=2\ncols=2\n(0, 1, 3)\n"), matrix.WithLogger(log))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("matrix: parsed").Len())

	// Results inherit the logger of the left operand.
	_, err = matrix.Mul(a, a)
	require.NoError(t, err)
	entries := logs.FilterMessage("matrix: multiply index built").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(1), entries[0].ContextMap()["buckets"])
	for _, e := range logs.All() {
		require.Equal(t, zapcore.DebugLevel, e.Level)
	}
}
