// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat provides the generic scalar, vector and matrix abstractions
// that the lattice reduction engines are built on: a pair of interchangeable
// numeric domains (Float, BigNum), each supplying an Integer and a Fraction
// type with a common operation set, and fixed-dimension vector/matrix
// containers over them.
package mat

import (
	"math"
	"math/big"

	"github.com/latticebasis/lll/internal/lllmath"
)

// Ops is a dictionary of arithmetic operations over a pair of ringed numeric
// types (Integer I, Fraction F). It is Go's answer to the associated-type
// trait the algorithm is naturally expressed over: without higher-kinded
// generics, the operation set is passed explicitly as a value instead of
// resolved by a type-class bound. Two instantiations are provided, Float
// and BigNum; both satisfy the same contract so the reduction engines can
// be written once against Ops[I, F] and run unmodified over either.
type Ops[I, F any] struct {
	// Integer operations.
	IntFromInt64 func(n int64) I
	IntAdd       func(a, b I) I
	IntSub       func(a, b I) I
	IntMul       func(a, b I) I
	IntCompare   func(a, b I) int
	IntClone     func(a I) I

	// Fraction operations.
	FracFromInt        func(a I) F
	FracFromRatio      func(num, den I) F
	FracFromInt64Ratio func(num, den int64) F
	FracFromFloat64    func(f float64) F
	FracAdd            func(a, b F) F
	FracSub            func(a, b F) F
	FracMul            func(a, b F) F
	FracDiv            func(a, b F) F
	FracAbs            func(a F) F
	FracCompare        func(a, b F) int
	FracCompareInt     func(f F, i I) int

	// Round returns the Integer nearest to f.
	Round func(f F) I
	// RoundDiv returns the Integer nearest to n/d.
	RoundDiv func(n, d I) I
}

// IntZero returns the additive identity of I.
func (o Ops[I, F]) IntZero() I { return o.IntFromInt64(0) }

// FracZero returns the additive identity of F.
func (o Ops[I, F]) FracZero() F { return o.FracFromInt64Ratio(0, 1) }

// IntEqual reports whether a == b.
func (o Ops[I, F]) IntEqual(a, b I) bool { return o.IntCompare(a, b) == 0 }

// FracLess reports whether a < b.
func (o Ops[I, F]) FracLess(a, b F) bool { return o.FracCompare(a, b) < 0 }

// Float is the IEEE-754 binary64 scalar domain: Integer and Fraction both
// collapse to float64, and rounding is to the nearest integer with ties
// away from zero (math.Round).
//
// The classical LLL and L² engines instantiated over Float do not
// guarantee termination on ill-conditioned bases; callers needing a
// termination guarantee must use BigNum instead.
var Float = Ops[float64, float64]{
	IntFromInt64: func(n int64) float64 { return float64(n) },
	IntAdd:       func(a, b float64) float64 { return a + b },
	IntSub:       func(a, b float64) float64 { return a - b },
	IntMul:       func(a, b float64) float64 { return a * b },
	IntCompare:   compareFloat64,
	IntClone:     func(a float64) float64 { return a },

	FracFromInt:        func(a float64) float64 { return a },
	FracFromRatio:      func(num, den float64) float64 { return num / den },
	FracFromInt64Ratio: func(num, den int64) float64 { return float64(num) / float64(den) },
	FracFromFloat64:    func(f float64) float64 { return f },
	FracAdd:            func(a, b float64) float64 { return a + b },
	FracSub:            func(a, b float64) float64 { return a - b },
	FracMul:            func(a, b float64) float64 { return a * b },
	FracDiv:            func(a, b float64) float64 { return a / b },
	FracAbs:            math.Abs,
	FracCompare:        compareFloat64,
	FracCompareInt:     compareFloat64,

	Round:    math.Round,
	RoundDiv: func(n, d float64) float64 { return math.Round(n / d) },
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// BigNum is the arbitrary-precision scalar domain: Integer is *big.Int and
// Fraction is *big.Rat, kept in canonical reduced form by big.Rat itself.
// Reductions instantiated over BigNum terminate in a finite number of steps
// on any integer basis.
var BigNum = Ops[*big.Int, *big.Rat]{
	IntFromInt64: big.NewInt,
	IntAdd:       func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
	IntSub:       func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) },
	IntMul:       func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
	IntCompare:   func(a, b *big.Int) int { return a.Cmp(b) },
	IntClone:     func(a *big.Int) *big.Int { return new(big.Int).Set(a) },

	FracFromInt:        func(a *big.Int) *big.Rat { return new(big.Rat).SetInt(a) },
	FracFromRatio:      func(num, den *big.Int) *big.Rat { return new(big.Rat).SetFrac(num, den) },
	FracFromInt64Ratio: big.NewRat,
	FracFromFloat64: func(f float64) *big.Rat {
		r := new(big.Rat).SetFloat64(f)
		if r == nil {
			panic("mat: cannot represent non-finite float64 as a Fraction")
		}
		return r
	},
	FracAdd:        func(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) },
	FracSub:        func(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) },
	FracMul:        func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) },
	FracDiv:        func(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) },
	FracAbs:        func(a *big.Rat) *big.Rat { return new(big.Rat).Abs(a) },
	FracCompare:    func(a, b *big.Rat) int { return a.Cmp(b) },
	FracCompareInt: func(f *big.Rat, i *big.Int) int { return f.Cmp(new(big.Rat).SetInt(i)) },

	Round:    lllmath.RoundRat,
	RoundDiv: lllmath.RoundDivInt,
}
