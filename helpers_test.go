// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lll

import (
	"math/big"

	"github.com/latticebasis/lll/mat"
)

func bigMatrixFromInts(cols [][]int64) mat.Matrix[*big.Int] {
	bigCols := make([][]*big.Int, len(cols))
	for i, c := range cols {
		row := make([]*big.Int, len(c))
		for j, v := range c {
			row[j] = big.NewInt(v)
		}
		bigCols[i] = row
	}
	return mat.FromColumnSlices(bigCols)
}

func floatMatrixFromInts(cols [][]float64) mat.Matrix[float64] {
	return mat.FromColumnSlices(cols)
}

func bigMatrixColumns(m mat.Matrix[*big.Int]) [][]int64 {
	n, _ := m.Dims()
	out := make([][]int64, n)
	for i := 0; i < n; i++ {
		raw := m.Col(i).Raw()
		row := make([]int64, len(raw))
		for j, v := range raw {
			row[j] = v.Int64()
		}
		out[i] = row
	}
	return out
}

func floatMatrixColumns(m mat.Matrix[float64]) [][]float64 {
	n, _ := m.Dims()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = append([]float64(nil), m.Col(i).Raw()...)
	}
	return out
}

func cloneBigMatrix(m mat.Matrix[*big.Int]) mat.Matrix[*big.Int] {
	return mat.CloneMatrix(m, mat.BigNum.IntClone)
}

func bigMatricesEqual(a, b mat.Matrix[*big.Int]) bool {
	na, _ := a.Dims()
	nb, _ := b.Dims()
	if na != nb {
		return false
	}
	for i := 0; i < na; i++ {
		ra, rb := a.Col(i).Raw(), b.Col(i).Raw()
		if len(ra) != len(rb) {
			return false
		}
		for j := range ra {
			if ra[j].Cmp(rb[j]) != 0 {
				return false
			}
		}
	}
	return true
}
