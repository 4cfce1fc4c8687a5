// Package lllmath holds small numeric helpers that do not belong on the
// public Ops contract in mat, the way gonum keeps asm kernels out of mat's
// public surface.
package lllmath

import "math/big"

// RoundRat returns the Integer nearest to x, rounding ties away from zero.
// x.Denom() is always positive (big.Rat keeps its sign on the numerator),
// so the sign of the result follows the sign of x.Num().
func RoundRat(x *big.Rat) *big.Int {
	num := x.Num()
	den := x.Denom()

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q
	}

	twiceR := new(big.Int).Lsh(new(big.Int).Abs(r), 1)
	if twiceR.Cmp(den) >= 0 {
		if num.Sign() >= 0 {
			q.Add(q, big.NewInt(1))
		} else {
			q.Sub(q, big.NewInt(1))
		}
	}
	return q
}

// RoundDivInt returns the Integer nearest to n/d, rounding ties away from
// zero. d must be non-zero.
func RoundDivInt(n, d *big.Int) *big.Int {
	return RoundRat(new(big.Rat).SetFrac(n, d))
}
