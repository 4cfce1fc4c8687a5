// Copyright the latticebasis authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lll

import "errors"

// ErrPrecondition is panicked when the L² engine is invoked with an (η, δ)
// pair outside the range required by Nguyen-Stehlé: 1/4 < δ < 1 and
// 1/2 < η < sqrt(δ). This is a programmer error, not a recoverable
// condition, so it panics rather than returning an error.
var ErrPrecondition = errors.New("lll: eta/delta out of range: require 0.25 < delta < 1 and 0.5 < eta, eta*eta < delta")
