// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

// Vector is a fixed-length ordered sequence of T. Its dimension is fixed at
// construction; every operation below that combines two vectors panics if
// their dimensions disagree.
type Vector[T any] struct {
	coefficients []T
}

// NewVector returns the zero-dimensional-safe wrapper around an explicit
// sequence of coefficients. The vector takes ownership of xs; callers must
// not mutate xs afterwards.
func NewVector[T any](xs []T) Vector[T] {
	return Vector[T]{coefficients: xs}
}

// Dim returns the vector's dimension.
func (v Vector[T]) Dim() int { return len(v.coefficients) }

// At returns the coefficient at index i. It panics if i is out of range.
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.coefficients) {
		panic(ErrVectorIndex)
	}
	return v.coefficients[i]
}

// Set writes x to index i. It panics if i is out of range.
func (v Vector[T]) Set(i int, x T) {
	if i < 0 || i >= len(v.coefficients) {
		panic(ErrVectorIndex)
	}
	v.coefficients[i] = x
}

// Raw exposes the backing slice for callers (within the module) that need
// direct iteration; it is not a copy.
func (v Vector[T]) Raw() []T { return v.coefficients }

// Clone returns a deep copy of v, cloning every coefficient with clone.
// Pass ops.IntClone for Vector[I]; pure value types may pass the identity
// function.
func Clone[T any](v Vector[T], clone func(T) T) Vector[T] {
	out := make([]T, v.Dim())
	for i, x := range v.coefficients {
		out[i] = clone(x)
	}
	return NewVector(out)
}

func requireSameDim[T any](a, b Vector[T]) {
	if a.Dim() != b.Dim() {
		panic(ErrVectorLength)
	}
}

// ZeroVector returns the dimension-d zero vector of I.
func ZeroVector[I, F any](ops Ops[I, F], dim int) Vector[I] {
	out := make([]I, dim)
	for i := range out {
		out[i] = ops.IntZero()
	}
	return NewVector(out)
}

// BasisVector returns e_pos: 1 at position pos, 0 elsewhere, dimension dim.
// It panics if pos is out of range.
func BasisVector[I, F any](ops Ops[I, F], dim, pos int) Vector[I] {
	if pos < 0 || pos >= dim {
		panic(ErrVectorIndex)
	}
	out := make([]I, dim)
	for i := range out {
		if i == pos {
			out[i] = ops.IntFromInt64(1)
		} else {
			out[i] = ops.IntZero()
		}
	}
	return NewVector(out)
}

// AddVec returns a + b, elementwise. Panics on dimension mismatch.
func AddVec[I, F any](ops Ops[I, F], a, b Vector[I]) Vector[I] {
	requireSameDim(a, b)
	out := make([]I, a.Dim())
	for i := range out {
		out[i] = ops.IntAdd(a.coefficients[i], b.coefficients[i])
	}
	return NewVector(out)
}

// SubVec returns a - b, elementwise. Panics on dimension mismatch.
func SubVec[I, F any](ops Ops[I, F], a, b Vector[I]) Vector[I] {
	requireSameDim(a, b)
	out := make([]I, a.Dim())
	for i := range out {
		out[i] = ops.IntSub(a.coefficients[i], b.coefficients[i])
	}
	return NewVector(out)
}

// MulVec returns v scaled by s, coefficientwise.
func MulVec[I, F any](ops Ops[I, F], v Vector[I], s I) Vector[I] {
	out := make([]I, v.Dim())
	for i, x := range v.coefficients {
		out[i] = ops.IntMul(x, s)
	}
	return NewVector(out)
}

// DotVec returns the inner product of a and b. Panics on dimension mismatch.
func DotVec[I, F any](ops Ops[I, F], a, b Vector[I]) I {
	requireSameDim(a, b)
	sum := ops.IntZero()
	for i := range a.coefficients {
		sum = ops.IntAdd(sum, ops.IntMul(a.coefficients[i], b.coefficients[i]))
	}
	return sum
}

// IsZeroVec reports whether every coefficient of v is the domain's zero.
func IsZeroVec[I, F any](ops Ops[I, F], v Vector[I]) bool {
	zero := ops.IntZero()
	for _, x := range v.coefficients {
		if !ops.IntEqual(x, zero) {
			return false
		}
	}
	return true
}
