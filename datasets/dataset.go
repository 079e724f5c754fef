package datasets

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/sparsegen/core/parallel"
)

// Rows at or below this count are converted to sparse form sequentially.
const sparseRowsParallelThreshold = 512

// Dataset is one generated linear-model sample.
type Dataset struct {
	// B holds the n outputs.
	B *mat.VecDense
	// A is the n×d masked Gaussian data matrix.
	A *mat.Dense
	// X is the length-d ground-truth coefficient vector.
	X *mat.VecDense

	// Mask is the sparsity pattern applied to A.
	Mask *Mask

	// Config is the configuration the dataset was generated with.
	Config Config
}

// Dims returns the sample and feature counts.
func (ds *Dataset) Dims() (n, d int) {
	return ds.A.Dims()
}

// SparseRow is one row of A in compressed form.
type SparseRow struct {
	Index []int
	Value []float64
}

// SparseRows returns A row by row as (column, value) pairs over the active
// columns of the mask, the sample layout consumed by SGD-style solvers.
func (ds *Dataset) SparseRows() []SparseRow {
	n, _ := ds.Dims()
	out := make([]SparseRow, n)
	parallel.ParallelizeWithThreshold(n, sparseRowsParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			cols := ds.Mask.Active(i)
			row := SparseRow{
				Index: make([]int, len(cols)),
				Value: make([]float64, len(cols)),
			}
			copy(row.Index, cols)
			for k, j := range cols {
				row.Value[k] = ds.A.At(i, j)
			}
			out[i] = row
		}
	})
	return out
}

// RowNonzeroCounts counts the nonzero entries of every row of A.
func (ds *Dataset) RowNonzeroCounts() []int {
	n, _ := ds.Dims()
	counts := make([]int, n)
	for i := range counts {
		for _, v := range ds.A.RawRowView(i) {
			if v != 0 {
				counts[i]++
			}
		}
	}
	return counts
}

// CoefficientSupport returns the indices of the nonzero entries of X.
func (ds *Dataset) CoefficientSupport() []int {
	var support []int
	for j := 0; j < ds.X.Len(); j++ {
		if ds.X.AtVec(j) != 0 {
			support = append(support, j)
		}
	}
	return support
}
