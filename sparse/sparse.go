// Package sparse provides a compressed sparse column matrix that plugs into
// gonum's mat.Matrix interface and exposes its columns as sparse vectors.
package sparse

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when a matrix or vector has an invalid shape.
	ErrShape = errors.New("sparse: dimension mismatch")
	// ErrIndex is returned when a stored row index is out of range or unsorted.
	ErrIndex = errors.New("sparse: invalid index")
)

// Vector is a read-only view of the stored entries of one column.
// Indices are strictly increasing.
type Vector struct {
	N       int       // logical length
	Indices []int     // row indices of stored entries
	Data    []float64 // stored values, parallel to Indices
}

// NNZ returns the number of stored entries.
func (v Vector) NNZ() int {
	return len(v.Indices)
}

// AtVec returns the element at position i.
func (v Vector) AtVec(i int) float64 {
	k := sort.SearchInts(v.Indices, i)
	if k < len(v.Indices) && v.Indices[k] == i {
		return v.Data[k]
	}
	return 0
}

// Dot returns the inner product of v with the dense vector x.
func (v Vector) Dot(x []float64) float64 {
	if len(x) != v.N {
		panic(ErrShape)
	}
	sum := 0.0
	for k, i := range v.Indices {
		sum += v.Data[k] * x[i]
	}
	return sum
}

// AddScaledTo computes dst += alpha*v. Only entries on the support of v are touched.
func (v Vector) AddScaledTo(dst []float64, alpha float64) {
	if len(dst) != v.N {
		panic(ErrShape)
	}
	if alpha == 0 {
		return
	}
	for k, i := range v.Indices {
		dst[i] += alpha * v.Data[k]
	}
}

// DoNonZero calls fn for each stored entry of v.
func (v Vector) DoNonZero(fn func(i int, v float64)) {
	for k, i := range v.Indices {
		fn(i, v.Data[k])
	}
}

// CSC is a compressed sparse column matrix.
type CSC struct {
	rows, cols int
	indptr     []int     // column j occupies ind[indptr[j]:indptr[j+1]]
	ind        []int     // row indices
	data       []float64 // values
}

// NewCSC creates a CSC matrix from raw compressed column arrays.
// The slices are used directly, not copied. Row indices within each column
// must be strictly increasing.
func NewCSC(rows, cols int, indptr, ind []int, data []float64) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	if len(indptr) != cols+1 {
		return nil, fmt.Errorf("%w: indptr length %d, want %d", ErrShape, len(indptr), cols+1)
	}
	if len(ind) != len(data) {
		return nil, fmt.Errorf("%w: %d indices for %d values", ErrShape, len(ind), len(data))
	}
	if indptr[0] != 0 || indptr[cols] != len(data) {
		return nil, fmt.Errorf("%w: indptr must span [0, %d]", ErrIndex, len(data))
	}
	for j := 0; j < cols; j++ {
		if indptr[j] > indptr[j+1] {
			return nil, fmt.Errorf("%w: indptr decreases at column %d", ErrIndex, j)
		}
		prev := -1
		for _, i := range ind[indptr[j]:indptr[j+1]] {
			if i <= prev || i >= rows {
				return nil, fmt.Errorf("%w: row %d in column %d", ErrIndex, i, j)
			}
			prev = i
		}
	}
	return &CSC{rows: rows, cols: cols, indptr: indptr, ind: ind, data: data}, nil
}

// FromMatrix converts any gonum matrix to CSC, dropping entries with
// absolute value not above tol.
func FromMatrix(m mat.Matrix, tol float64) *CSC {
	r, c := m.Dims()
	s := &CSC{rows: r, cols: c, indptr: make([]int, c+1)}
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v := m.At(i, j)
			if math.Abs(v) > tol {
				s.ind = append(s.ind, i)
				s.data = append(s.data, v)
			}
		}
		s.indptr[j+1] = len(s.data)
	}
	return s
}

// FromTriplets builds a CSC matrix from coordinate triplets. Duplicate
// coordinates are summed.
func FromTriplets(rows, cols int, ri, ci []int, vals []float64) (*CSC, error) {
	if len(ri) != len(ci) || len(ri) != len(vals) {
		return nil, fmt.Errorf("%w: triplet lengths %d, %d, %d", ErrShape, len(ri), len(ci), len(vals))
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}

	perm := make([]int, len(vals))
	for k := range perm {
		if ri[k] < 0 || ri[k] >= rows || ci[k] < 0 || ci[k] >= cols {
			return nil, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrIndex, ri[k], ci[k], rows, cols)
		}
		perm[k] = k
	}
	sort.Slice(perm, func(a, b int) bool {
		pa, pb := perm[a], perm[b]
		if ci[pa] != ci[pb] {
			return ci[pa] < ci[pb]
		}
		return ri[pa] < ri[pb]
	})

	s := &CSC{rows: rows, cols: cols, indptr: make([]int, cols+1)}
	lastRow, lastCol := -1, -1
	for _, k := range perm {
		if ri[k] == lastRow && ci[k] == lastCol {
			s.data[len(s.data)-1] += vals[k]
			continue
		}
		s.ind = append(s.ind, ri[k])
		s.data = append(s.data, vals[k])
		s.indptr[ci[k]+1]++
		lastRow, lastCol = ri[k], ci[k]
	}
	for j := 0; j < cols; j++ {
		s.indptr[j+1] += s.indptr[j]
	}
	return s, nil
}

// Dims returns the number of rows and columns.
func (s *CSC) Dims() (r, c int) {
	return s.rows, s.cols
}

// At returns the element at row i, column j.
func (s *CSC) At(i, j int) float64 {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		panic(mat.ErrIndexOutOfRange)
	}
	return s.Column(j).AtVec(i)
}

// T returns the transpose of s.
func (s *CSC) T() mat.Matrix {
	return mat.Transpose{Matrix: s}
}

// NNZ returns the number of stored entries.
func (s *CSC) NNZ() int {
	return len(s.data)
}

// Column returns a view of column j. The returned vector shares storage with s.
func (s *CSC) Column(j int) Vector {
	if j < 0 || j >= s.cols {
		panic(mat.ErrColAccess)
	}
	lo, hi := s.indptr[j], s.indptr[j+1]
	return Vector{N: s.rows, Indices: s.ind[lo:hi:hi], Data: s.data[lo:hi:hi]}
}

// DoColNonZero calls fn for each stored entry of column j.
func (s *CSC) DoColNonZero(j int, fn func(i, j int, v float64)) {
	col := s.Column(j)
	for k, i := range col.Indices {
		fn(i, j, col.Data[k])
	}
}

// DoNonZero calls fn for each stored entry of s, column by column.
func (s *CSC) DoNonZero(fn func(i, j int, v float64)) {
	for j := 0; j < s.cols; j++ {
		s.DoColNonZero(j, fn)
	}
}

// MulVecTo computes dst = s*x.
func (s *CSC) MulVecTo(dst, x []float64) {
	if len(x) != s.cols || len(dst) != s.rows {
		panic(ErrShape)
	}
	for i := range dst {
		dst[i] = 0
	}
	for j := 0; j < s.cols; j++ {
		s.Column(j).AddScaledTo(dst, x[j])
	}
}

// DenseColumns exposes the columns of a dense gonum matrix as sparse vectors
// with every position stored. It lets dense correlation matrices be used
// wherever column access is expected.
type DenseColumns struct {
	m       mat.Matrix
	indices []int
	cols    [][]float64
}

// NewDenseColumns caches the columns of m.
func NewDenseColumns(m mat.Matrix) *DenseColumns {
	r, c := m.Dims()
	d := &DenseColumns{m: m, indices: make([]int, r), cols: make([][]float64, c)}
	for i := range d.indices {
		d.indices[i] = i
	}
	for j := 0; j < c; j++ {
		d.cols[j] = mat.Col(nil, j, m)
	}
	return d
}

// Dims returns the number of rows and columns.
func (d *DenseColumns) Dims() (r, c int) {
	return d.m.Dims()
}

// Column returns column j as a fully stored vector.
func (d *DenseColumns) Column(j int) Vector {
	if j < 0 || j >= len(d.cols) {
		panic(mat.ErrColAccess)
	}
	return Vector{N: len(d.indices), Indices: d.indices, Data: d.cols[j]}
}
