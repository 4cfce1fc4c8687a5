// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lll

import "github.com/latticebasis/lll/mat"

// gramSchmidtMuR recomputes the exact Gram-Schmidt coefficients μ_{i,j} and
// r_{i,j} = <b_i, b_j*> of basis from scratch. It is an independent
// reimplementation of the formulas in §3/§4.4 used only by tests, to check
// the engines' output against the definitions rather than against their
// own incremental bookkeeping.
func gramSchmidtMuR[I, F any](ops mat.Ops[I, F], basis mat.Matrix[I]) (mu, r [][]F) {
	d, _ := basis.Dims()
	gram := make([][]I, d)
	for i := 0; i < d; i++ {
		gram[i] = make([]I, d)
		for j := 0; j <= i; j++ {
			gram[i][j] = mat.DotVec(ops, basis.Col(i), basis.Col(j))
		}
	}

	mu = make([][]F, d)
	r = make([][]F, d)
	for i := range mu {
		mu[i] = make([]F, d)
		r[i] = make([]F, d)
	}

	for j := 0; j < d; j++ {
		for i := j; i < d; i++ {
			sum := ops.FracZero()
			for l := 0; l < j; l++ {
				sum = ops.FracAdd(sum, ops.FracMul(mu[j][l], r[i][l]))
			}
			r[i][j] = ops.FracSub(ops.FracFromInt(gram[i][j]), sum)
			mu[i][j] = ops.FracDiv(r[i][j], r[j][j])
		}
	}
	return mu, r
}

// checkSizeReduced reports whether |mu[i][j]| <= eta for all j < i < d.
func checkSizeReduced[I, F any](ops mat.Ops[I, F], mu [][]F, d int, eta F) bool {
	for i := 0; i < d; i++ {
		for j := 0; j < i; j++ {
			if ops.FracLess(eta, ops.FracAbs(mu[i][j])) {
				return false
			}
		}
	}
	return true
}

// checkLovasz reports whether delta*r[i][i] <= r[i+1][i+1] + mu[i+1][i]^2*r[i][i]
// for all i < d-1.
func checkLovasz[I, F any](ops mat.Ops[I, F], mu, r [][]F, d int, delta F) bool {
	for i := 0; i < d-1; i++ {
		lhs := ops.FracMul(delta, r[i][i])
		rhs := ops.FracAdd(r[i+1][i+1], ops.FracMul(ops.FracMul(mu[i+1][i], mu[i+1][i]), r[i][i]))
		if ops.FracLess(rhs, lhs) {
			return false
		}
	}
	return true
}

// gramDeterminant computes det(B^T B) by Gaussian elimination in the
// Fraction domain, used to test lattice preservation (spec §8, property 1):
// |det(B'^T B')| == |det(B^T B)| for a unimodular basis change.
func gramDeterminant[I, F any](ops mat.Ops[I, F], basis mat.Matrix[I]) F {
	d, _ := basis.Dims()
	g := make([][]F, d)
	for i := 0; i < d; i++ {
		g[i] = make([]F, d)
		for j := 0; j < d; j++ {
			g[i][j] = ops.FracFromInt(mat.DotVec(ops, basis.Col(i), basis.Col(j)))
		}
	}

	det := ops.FracFromInt64Ratio(1, 1)
	for col := 0; col < d; col++ {
		pivotRow := -1
		for row := col; row < d; row++ {
			if ops.FracCompare(g[row][col], ops.FracZero()) != 0 {
				pivotRow = row
				break
			}
		}
		if pivotRow == -1 {
			return ops.FracZero()
		}
		if pivotRow != col {
			g[col], g[pivotRow] = g[pivotRow], g[col]
			det = ops.FracMul(det, ops.FracFromInt64Ratio(-1, 1))
		}
		pivot := g[col][col]
		det = ops.FracMul(det, pivot)
		for row := col + 1; row < d; row++ {
			if ops.FracCompare(g[row][col], ops.FracZero()) == 0 {
				continue
			}
			factor := ops.FracDiv(g[row][col], pivot)
			for c := col; c < d; c++ {
				g[row][c] = ops.FracSub(g[row][c], ops.FracMul(factor, g[col][c]))
			}
		}
	}
	return det
}
