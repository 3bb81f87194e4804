// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/sparsemat/matrix"
)

// ExampleMul multiplies a diagonal matrix by the identity and prints the
// result in the text format.
func ExampleMul() {
	a, _ := matrix.Read(strings.NewReader("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n"))
	id, _ := matrix.Read(strings.NewReader("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 1)\n"))

	sum, _ := matrix.Add(a, id)
	_, _ = sum.WriteTo(os.Stdout)

	prod, _ := matrix.Mul(a, id)
	_, _ = prod.WriteTo(os.Stdout)

	// Output:
	// rows=2
	// cols=2
	// (0, 0, 2)
	// (1, 1, 3)
	// rows=2
	// cols=2
	// (0, 0, 1)
	// (1, 1, 2)
}

// ExampleSparseMatrix_Set shows zero-elision: writing 0 removes the entry.
func ExampleSparseMatrix_Set() {
	m, _ := matrix.NewSparse(3, 3)
	_ = m.Set(1, 2, 4.5)
	fmt.Println(m.NNZ())

	_ = m.Set(1, 2, 0)
	v, _ := m.At(1, 2)
	fmt.Println(m.NNZ(), v)

	err := m.Set(3, 0, 1)
	fmt.Println(err)

	// Output:
	// 1
	// 0 0
	// SparseMatrix.Set(3,0): matrix: index out of range
}

// ExampleRead shows the error returned for a data line with two fields.
func ExampleRead() {
	_, err := matrix.Read(strings.NewReader("rows=3\ncols=3\n(1, 2)\n"))
	fmt.Println(err)

	// Output:
	// matrix: malformed input at line 3 "(1, 2)": expected 3 comma-separated fields
}
