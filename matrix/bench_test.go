// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the sparse kernels and codec,
// using deterministic random fill.
package matrix_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
)

// benchShapes are (n, nnz) pairs: n×n matrices with nnz random entries.
var benchShapes = [][2]int{{1_000, 5_000}, {10_000, 50_000}, {100_000, 200_000}}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.SparseMatrix
	sinkN int64
)

func benchSparse(b *testing.B, n, nnz int, s int64) *matrix.SparseMatrix {
	b.Helper()
	rng := rand.New(rand.NewSource(s))
	m, err := matrix.NewSparse(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < nnz; i++ {
		if err = m.Set(rng.Intn(n), rng.Intn(n), rng.Float64()+0.5); err != nil {
			b.Fatal(err)
		}
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("n=%d/nnz=%d", sh[0], sh[1]), func(b *testing.B) {
			x := benchSparse(b, sh[0], sh[1], 1337)
			y := benchSparse(b, sh[0], sh[1], 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, sh := range benchShapes {
		b.Run(fmt.Sprintf("n=%d/nnz=%d", sh[0], sh[1]), func(b *testing.B) {
			x := benchSparse(b, sh[0], sh[1], 11)
			y := benchSparse(b, sh[0], sh[1], 22)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkWriteRead(b *testing.B) {
	x := benchSparse(b, 10_000, 50_000, 7)
	var buf bytes.Buffer
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		n, err := x.WriteTo(&buf)
		if err != nil {
			b.Fatal(err)
		}
		sinkN = n
		m, err := matrix.Read(&buf)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
