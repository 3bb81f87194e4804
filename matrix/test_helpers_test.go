// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the sparse kernels.
//   • Keep random data seeded and integer-valued where exact equality is asserted.

package matrix_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/matrix"
)

// seed keeps every randomized test reproducible.
const seed = 20240601

// MustSparse ALLOCATES an r×c *SparseMatrix filled with the given entries or
// fails the test.
func MustSparse(t *testing.T, r, c int, entries ...matrix.Entry) *matrix.SparseMatrix {
	t.Helper()
	m, err := matrix.NewSparse(r, c)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, m.Set(e.Row, e.Col, e.Value))
	}

	return m
}

// E is shorthand for an Entry literal.
func E(r, c int, v float64) matrix.Entry { return matrix.Entry{Row: r, Col: c, Value: v} }

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustRead PARSES text or fails the test.
func MustRead(t *testing.T, text string, opts ...matrix.Option) *matrix.SparseMatrix {
	t.Helper()
	m, err := matrix.Read(strings.NewReader(text), opts...)
	require.NoError(t, err)

	return m
}

// RequireSameEntries compares shape and row-major entries with a readable diff.
func RequireSameEntries(t *testing.T, want, got *matrix.SparseMatrix, opts ...cmp.Option) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	if diff := cmp.Diff(want.Entries(), got.Entries(), opts...); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

// RandomSparse builds an r×c matrix with up to nnz entries drawn from rng.
// Values are non-zero integers in [-5, -1] ∪ [1, 5] so sums and products
// stay exact in float64 and algebraic identities can be checked with Equal.
func RandomSparse(t *testing.T, rng *rand.Rand, r, c, nnz int) *matrix.SparseMatrix {
	t.Helper()
	m := MustSparse(t, r, c)
	for n := 0; n < nnz; n++ {
		v := float64(rng.Intn(5) + 1)
		if rng.Intn(2) == 0 {
			v = -v
		}
		require.NoError(t, m.Set(rng.Intn(r), rng.Intn(c), v))
	}

	return m
}

// RandomFloatSparse is RandomSparse with arbitrary floats in (-10, 10).
func RandomFloatSparse(t *testing.T, rng *rand.Rand, r, c, nnz int) *matrix.SparseMatrix {
	t.Helper()
	m := MustSparse(t, r, c)
	for n := 0; n < nnz; n++ {
		require.NoError(t, m.Set(rng.Intn(r), rng.Intn(c), rng.Float64()*20-10))
	}

	return m
}
