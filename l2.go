// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lll

import (
	"math/big"

	"github.com/latticebasis/lll/mat"
)

// squareGram is a d x d grid of I, used lower-triangular (row >= col) to
// hold the Gram matrix: gram[i][j] == <b_i, b_j> for j <= i.
type squareGram[I any] [][]I

// squareFrac is a d x d grid of F, used to hold the μ and r matrices for
// pairs (i, j) with j <= i.
type squareFrac[F any] [][]F

func newSquareGram[I any](d int, zero I) squareGram[I] {
	g := make(squareGram[I], d)
	for i := range g {
		g[i] = make([]I, d)
		for j := range g[i] {
			g[i][j] = zero
		}
	}
	return g
}

func newSquareFrac[F any](d int, zero F) squareFrac[F] {
	g := make(squareFrac[F], d)
	for i := range g {
		g[i] = make([]F, d)
		for j := range g[i] {
			g[i][j] = zero
		}
	}
	return g
}

// ReduceL2 reduces basis in place using the Nguyen-Stehlé L² algorithm,
// tracking the Gram matrix and the μ/r coefficients incrementally instead
// of recomputing Gram-Schmidt from scratch on every swap, over the scalar
// domain described by ops.
//
// eta and delta must satisfy 1/4 < delta < 1 and 1/2 < eta, eta*eta < delta;
// ReduceL2 panics with ErrPrecondition otherwise, before any mutation of
// basis. Over mat.BigNum, ReduceL2 terminates in a finite number of steps
// on any integer basis and its output is (eta, delta)-reduced. Over
// mat.Float it terminates in practice on well-conditioned inputs within
// the dynamic range of binary64, but pathological inputs may diverge.
//
// A second full pass over the converged basis is run, followed by moving
// any zero columns (an under-determined rank-deficient input basis can
// produce these) to the front in their original relative order — the
// fplll-style post-pass described in the design notes. A conforming
// implementation may omit this for a full-rank input, since it is then a
// no-op; it is required to reproduce the documented zero-column behaviour
// on rank-deficient input.
func ReduceL2[I, F any](ops mat.Ops[I, F], basis *mat.Matrix[I], eta, delta float64) {
	if !(0.25 < delta && delta < 1) || !(0.5 < eta && eta*eta < delta) {
		panic(ErrPrecondition)
	}

	reduceL2Core(ops, basis, eta, delta)
	reduceL2Core(ops, basis, eta, delta)
	moveZeroColumnsToFront(ops, basis)
}

func reduceL2Core[I, F any](ops mat.Ops[I, F], basis *mat.Matrix[I], eta, delta float64) {
	d, _ := basis.Dims()
	if d < 2 {
		return
	}

	gram := newSquareGram(d, ops.IntZero())
	mu := newSquareFrac(d, ops.FracZero())
	r := newSquareFrac(d, ops.FracZero())

	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			gram[i][j] = mat.DotVec(ops, basis.Col(i), basis.Col(j))
		}
	}

	etaMinus := ops.FracFromFloat64((eta + 0.5) / 2)
	deltaPlus := ops.FracFromFloat64((delta + 1) / 2)

	r[0][0] = ops.FracFromInt(gram[0][0])

	k := 1
	for k < d {
		sizeReduceL2(ops, k, d, basis, gram, mu, r, etaMinus)

		lhs := ops.FracMul(deltaPlus, r[k-1][k-1])
		rhs := ops.FracAdd(r[k][k], ops.FracMul(ops.FracMul(mu[k][k-1], mu[k][k-1]), r[k-1][k-1]))

		if ops.FracLess(lhs, rhs) {
			k++
			continue
		}

		basis.Swap(k, k-1)

		// Update the Gram rows/columns touched by the swap, respecting
		// lower-triangular storage: row index is always >= column index.
		for j := 0; j < d; j++ {
			if j < k {
				gram[k][j] = mat.DotVec(ops, basis.Col(k), basis.Col(j))
				gram[k-1][j] = mat.DotVec(ops, basis.Col(k-1), basis.Col(j))
			} else {
				gram[j][k] = mat.DotVec(ops, basis.Col(k), basis.Col(j))
				gram[j][k-1] = mat.DotVec(ops, basis.Col(k-1), basis.Col(j))
			}
		}

		for i := 0; i <= k; i++ {
			for j := 0; j <= i; j++ {
				sum := ops.FracZero()
				for idx := 0; idx < j; idx++ {
					sum = ops.FracAdd(sum, ops.FracMul(mu[j][idx], r[i][idx]))
				}
				r[i][j] = ops.FracSub(ops.FracFromInt(gram[i][j]), sum)
				// mu is only ever read off-diagonal (j < i); r[j][j] may be
				// exactly zero on a rank-deficient basis, so the diagonal
				// entry is left undefined rather than divided by zero, and
				// mu[i][j] is set to zero when r[j][j] is zero.
				if j < i {
					if ops.FracCompare(r[j][j], ops.FracZero()) == 0 {
						mu[i][j] = ops.FracZero()
					} else {
						mu[i][j] = ops.FracDiv(r[i][j], r[j][j])
					}
				}
			}
		}

		if k > 1 {
			k--
		}
	}
}

// sizeReduceL2 performs the η-size-reduction of basis column k, updating
// basis, gram, mu and r in place, per §4.4.1: it recomputes row k of μ/r,
// and if any |μ[k][i]| exceeds eta for i < k, subtracts rounded multiples
// of the earlier columns from column k and restarts.
func sizeReduceL2[I, F any](ops mat.Ops[I, F], k, d int, basis *mat.Matrix[I], gram squareGram[I], mu, r squareFrac[F], eta F) {
	for {
		for i := 0; i <= k; i++ {
			sum := ops.FracZero()
			for idx := 0; idx < i; idx++ {
				sum = ops.FracAdd(sum, ops.FracMul(mu[i][idx], r[k][idx]))
			}
			r[k][i] = ops.FracSub(ops.FracFromInt(gram[k][i]), sum)
			// As above: mu[k][k] would divide by r[k][k], which is exactly
			// zero for a rank-deficient column, and is never read anyway;
			// mu[k][i] is zero when r[i][i] is zero.
			if i < k {
				if ops.FracCompare(r[i][i], ops.FracZero()) == 0 {
					mu[k][i] = ops.FracZero()
				} else {
					mu[k][i] = ops.FracDiv(r[k][i], r[i][i])
				}
			}
		}

		violated := false
		for i := 0; i < k; i++ {
			if ops.FracLess(eta, ops.FracAbs(mu[k][i])) {
				violated = true
				break
			}
		}
		if !violated {
			return
		}

		for i := k - 1; i >= 0; i-- {
			x := ops.Round(mu[k][i])
			basis.SetCol(k, mat.SubVec(ops, basis.Col(k), mat.MulVec(ops, basis.Col(i), x)))

			for j := 0; j < d; j++ {
				if j < k {
					gram[k][j] = mat.DotVec(ops, basis.Col(k), basis.Col(j))
				} else {
					gram[j][k] = mat.DotVec(ops, basis.Col(k), basis.Col(j))
				}
			}

			xFrac := ops.FracFromInt(x)
			for j := 0; j < i; j++ {
				mu[k][j] = ops.FracSub(mu[k][j], ops.FracMul(xFrac, mu[i][j]))
			}
		}
		// Restart from the top: the cross-updates above can put
		// |mu[k][i]| back outside [-eta, eta].
	}
}

// moveZeroColumnsToFront moves every zero column of basis to the front, in
// their original relative order, leaving the relative order of the
// remaining columns unchanged.
func moveZeroColumnsToFront[I, F any](ops mat.Ops[I, F], basis *mat.Matrix[I]) {
	d, _ := basis.Dims()
	front := 0
	for i := 0; i < d; i++ {
		if mat.IsZeroVec(ops, basis.Col(i)) {
			basis.Insert(i, front)
			front++
		}
	}
}

// L2Float reduces basis in place using the L² algorithm over IEEE-754
// binary64 arithmetic. See ReduceL2 for the (eta, delta) preconditions.
func L2Float(basis *mat.Matrix[float64], eta, delta float64) {
	ReduceL2(mat.Float, basis, eta, delta)
}

// L2BigNum reduces basis in place using the L² algorithm over
// arbitrary-precision arithmetic. See ReduceL2 for the (eta, delta)
// preconditions.
func L2BigNum(basis *mat.Matrix[*big.Int], eta, delta float64) {
	ReduceL2(mat.BigNum, basis, eta, delta)
}
