package datasets

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/YuminosukeSato/sparsegen/pkg/errors"
)

// Mask is an n×d {0,1} matrix in which every row holds the same number of
// ones at independently drawn columns. It implements mat.Matrix so it can be
// applied with (*mat.Dense).MulElem. Zero-sized masks are allowed.
type Mask struct {
	rows, cols int
	nonzero    int
	active     [][]int
	data       []float64
}

// RowShuffledMask draws an n×d mask whose rows each contain exactly
// numNonzero ones. Each row's active columns are a uniform numNonzero-subset
// of {0, ..., d-1}, drawn from rnd independently of every other row; this is
// the same distribution as permuting a row of d-numNonzero zeros followed by
// numNonzero ones.
//
// rnd is advanced by one subset draw per row, and not at all when numNonzero
// is zero.
func RowShuffledMask(rnd *rand.Rand, n, d, numNonzero int) (*Mask, error) {
	if rnd == nil {
		return nil, errors.NewValidationError("rnd", "random source must not be nil", nil)
	}
	if n < 0 {
		return nil, errors.NewValidationError("n", "must be non-negative", n)
	}
	if d < 0 {
		return nil, errors.NewValidationError("d", "must be non-negative", d)
	}
	if numNonzero < 0 || numNonzero > d {
		return nil, errors.NewValidationError("num_nonzero", "must be in [0, d]", numNonzero)
	}

	m := &Mask{
		rows:    n,
		cols:    d,
		nonzero: numNonzero,
		active:  make([][]int, n),
		data:    make([]float64, n*d),
	}
	for i := 0; i < n; i++ {
		cols := make([]int, numNonzero)
		// sampleuv rejects empty draws.
		if numNonzero > 0 {
			sampleuv.WithoutReplacement(cols, d, rnd)
			sort.Ints(cols)
		}
		row := m.data[i*d : (i+1)*d]
		for _, j := range cols {
			row[j] = 1
		}
		m.active[i] = cols
	}
	return m, nil
}

// Dims implements mat.Matrix.
func (m *Mask) Dims() (r, c int) {
	return m.rows, m.cols
}

// At implements mat.Matrix. It panics with mat.ErrRowAccess or
// mat.ErrColAccess when out of range, as gonum matrices do.
func (m *Mask) At(i, j int) float64 {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(m.cols) {
		panic(mat.ErrColAccess)
	}
	return m.data[i*m.cols+j]
}

// T implements mat.Matrix.
func (m *Mask) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// RowNonzero is the number of ones in every row.
func (m *Mask) RowNonzero() int {
	return m.nonzero
}

// Active returns the sorted active columns of row i. The slice is shared
// with the mask and must not be modified.
func (m *Mask) Active(i int) []int {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	return m.active[i]
}

// Dense copies the mask into a *mat.Dense, or returns nil for an empty mask
// since gonum cannot represent zero-sized matrices.
func (m *Mask) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data)
}
