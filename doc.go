// Package sparsemat is a small toolkit for sparse matrix arithmetic on
// plain-text files: parse, add, subtract, multiply, write back.
//
// 🚀 What is sparsemat?
//
//	A dictionary-of-keys sparse matrix with a strict text codec:
//		• Storage: only non-zero entries are kept, zero writes delete
//		• Arithmetic: Add, Sub, Mul (index-accelerated), Transpose, Scale
//		• Codec: rows=/cols= headers and "(r, c, v)" lines, precise errors
//		• Interop: gonum mat.Matrix views and dense conversion
//		• CLI: sparsecalc add|subtract|multiply|run|info
//
// Layout:
//
//	matrix/           SparseMatrix, operations, codec, gonum interop
//	internal/config/  YAML configuration for the CLI
//	internal/driver/  loads operands, applies an operation, writes results
//	cmd/sparsecalc/   cobra entry point
//
// Quick example (a.txt × b.txt):
//
//	a.txt: rows=2 cols=2 (0, 0, 1) (1, 1, 3)
//	b.txt: rows=2 cols=2 (0, 1, 2) (1, 1, 4)
//	multiplication_result.txt: rows=2 cols=2 (0, 1, 2) (1, 1, 12)
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsecalc@latest
package sparsemat
