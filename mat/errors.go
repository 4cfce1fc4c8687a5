// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "errors"

// Precondition violations are programmer errors: they are never returned,
// they panic, the way mat.Dense panics on ErrShape in the teacher package.
var (
	// ErrVectorLength is panicked when two vectors participating in a
	// dimension-checked operation do not share a dimension.
	ErrVectorLength = errors.New("mat: vector length mismatch")

	// ErrVectorIndex is panicked on an out-of-range vector index.
	ErrVectorIndex = errors.New("mat: vector index out of range")

	// ErrMatrixIndex is panicked on an out-of-range matrix column or row index.
	ErrMatrixIndex = errors.New("mat: matrix index out of range")

	// ErrColumnDimension is panicked when FromColumns is given columns of
	// unequal dimension.
	ErrColumnDimension = errors.New("mat: columns have unequal dimension")
)
