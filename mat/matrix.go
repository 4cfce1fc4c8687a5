// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

// Matrix is an ordered sequence of column vectors of equal dimension. Its
// shape is the pair (NumCols, AmbientDim): NumCols is the number of columns
// (the lattice basis rank), AmbientDim is the dimension each column lives
// in. The matrix owns its columns — Col returns the matrix's own backing
// vector, not an independent copy, so callers that need an isolated
// snapshot should use Clone on the result.
type Matrix[T any] struct {
	columns    []Vector[T]
	ambientDim int
}

// NewMatrix returns a NumCols x AmbientDim matrix of zero columns.
func NewMatrix[I, F any](ops Ops[I, F], numCols, ambientDim int) Matrix[I] {
	cols := make([]Vector[I], numCols)
	for i := range cols {
		cols[i] = ZeroVector(ops, ambientDim)
	}
	return Matrix[I]{columns: cols, ambientDim: ambientDim}
}

// FromColumns builds a Matrix from pre-built column vectors. It panics if
// the columns do not all share the same dimension.
func FromColumns[T any](columns []Vector[T]) Matrix[T] {
	if len(columns) == 0 {
		return Matrix[T]{}
	}
	dim := columns[0].Dim()
	for _, c := range columns {
		if c.Dim() != dim {
			panic(ErrColumnDimension)
		}
	}
	return Matrix[T]{columns: columns, ambientDim: dim}
}

// FromColumnSlices wraps each element of columns — a raw sequence of
// coefficients — into a column Vector, then composes them with
// FromColumns. This is the low-level entry point a caller who already has
// `[][]T` (one inner slice per column) uses to build a basis.
func FromColumnSlices[T any](columns [][]T) Matrix[T] {
	vecs := make([]Vector[T], len(columns))
	for i, c := range columns {
		vecs[i] = NewVector(c)
	}
	return FromColumns(vecs)
}

// Dims returns (NumCols, AmbientDim).
func (m Matrix[T]) Dims() (numCols, ambientDim int) {
	return len(m.columns), m.ambientDim
}

// NumCols returns the number of columns (the basis rank).
func (m Matrix[T]) NumCols() int { return len(m.columns) }

// AmbientDim returns the dimension each column lives in.
func (m Matrix[T]) AmbientDim() int { return m.ambientDim }

func (m Matrix[T]) checkCol(i int) {
	if i < 0 || i >= len(m.columns) {
		panic(ErrMatrixIndex)
	}
}

// Col returns column i. Panics if i is out of range.
func (m Matrix[T]) Col(i int) Vector[T] {
	m.checkCol(i)
	return m.columns[i]
}

// SetCol replaces column i with v. Panics if i is out of range or v's
// dimension does not match AmbientDim.
func (m *Matrix[T]) SetCol(i int, v Vector[T]) {
	m.checkCol(i)
	if v.Dim() != m.ambientDim {
		panic(ErrColumnDimension)
	}
	m.columns[i] = v
}

// Swap exchanges columns i and j. Panics if either is out of range.
func (m *Matrix[T]) Swap(i, j int) {
	m.checkCol(i)
	m.checkCol(j)
	m.columns[i], m.columns[j] = m.columns[j], m.columns[i]
}

// Insert removes column i and reinserts it at position j, shifting the
// intermediate columns by one position (order-preserving for the columns
// that are not i). Panics if either index is out of range.
func (m *Matrix[T]) Insert(i, j int) {
	m.checkCol(i)
	m.checkCol(j)
	v := m.columns[i]
	m.columns = append(m.columns[:i], m.columns[i+1:]...)
	rest := make([]Vector[T], len(m.columns)-j)
	copy(rest, m.columns[j:])
	m.columns = append(append(m.columns[:j:j], v), rest...)
}

// CloneMatrix returns a deep copy of m, cloning every coefficient with clone.
func CloneMatrix[T any](m Matrix[T], clone func(T) T) Matrix[T] {
	cols := make([]Vector[T], len(m.columns))
	for i, c := range m.columns {
		cols[i] = Clone(c, clone)
	}
	return Matrix[T]{columns: cols, ambientDim: m.ambientDim}
}
