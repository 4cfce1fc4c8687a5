// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lll implements lattice basis reduction: given a basis of a
// full-rank lattice in Z^n (or R^n), it computes another basis of the same
// lattice whose vectors are short and nearly orthogonal.
//
// Two algorithms are provided: the original Lenstra-Lenstra-Lovász (LLL)
// algorithm (ReduceLLL, LLLFloat, LLLBigNum) and its numerically refined
// successor, the L² algorithm of Nguyen and Stehlé (ReduceL2, L2Float,
// L2BigNum). Each is available over two scalar flavours: IEEE-754 binary64
// (package-level var mat.Float) for speed, and arbitrary-precision
// integers/rationals (mat.BigNum) for correctness on large inputs.
//
// The engines are single-threaded, synchronous, and mutate the supplied
// basis in place; there is no shared mutable state, so independent bases
// may be reduced concurrently by the caller. Precondition violations (an
// out-of-range (η, δ) pair, mismatched vector dimensions, an out-of-range
// index) panic rather than return an error: these are programmer errors,
// not recoverable conditions.
//
// The float flavour is best-effort: LLLFloat and L2Float may loop
// indefinitely on ill-conditioned bases, because binary64 arithmetic can
// lose the sign information the swap loop depends on to terminate.
// Callers that need a termination guarantee should use LLLBigNum or
// L2BigNum.
package lll
