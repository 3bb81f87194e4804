// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

const opSummarize = "Summarize"

// Summary describes a sparse matrix: its shape, fill and the distribution of
// its stored values. Value statistics ignore implicit zeros.
type Summary struct {
	Rows    int
	Cols    int
	NNZ     int
	Density float64 // NNZ / (Rows*Cols); 0 for an empty shape
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64 // population standard deviation
}

// Summarize computes a Summary of m. A matrix without entries yields zero
// value statistics rather than an error.
//
// Errors:
//   - ErrNilMatrix; statistics errors are wrapped as-is (not expected for nnz > 0).
//
// Complexity: O(nnz).
func Summarize(m *SparseMatrix) (Summary, error) {
	if err := ValidateNotNil(m); err != nil {
		return Summary{}, matrixErrorf(opSummarize, err)
	}

	s := Summary{Rows: m.rows, Cols: m.cols, NNZ: len(m.entries)}
	if cells := float64(m.rows) * float64(m.cols); cells > 0 {
		s.Density = float64(s.NNZ) / cells
	}
	if s.NNZ == 0 {
		return s, nil
	}

	data := make(stats.Float64Data, 0, s.NNZ)
	for _, v := range m.entries {
		data = append(data, v)
	}

	var err error
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, matrixErrorf(opSummarize, err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, matrixErrorf(opSummarize, err)
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, matrixErrorf(opSummarize, err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, matrixErrorf(opSummarize, err)
	}

	return s, nil
}

// String renders the summary on one line for logs and the CLI.
func (s Summary) String() string {
	return fmt.Sprintf("%dx%d nnz=%d density=%.6g min=%g max=%g mean=%g stddev=%g",
		s.Rows, s.Cols, s.NNZ, s.Density, s.Min, s.Max, s.Mean, s.StdDev)
}
