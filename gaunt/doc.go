// SPDX-License-Identifier: MIT

// Package gaunt computes Gaunt coefficients: the expansion coefficients of a
// product of two associated Legendre functions into single ones.
//
// 🚀 What is a Gaunt expansion?
//
//	For integer degrees n, ν and orders m, μ the product of two associated
//	Legendre functions is a finite sum of Legendre functions of order m+μ:
//
//	  P_n^m(x)·P_ν^μ(x) = a0 · Σ_{q=0..qmax} ã(q) · P_{n+ν−2q}^{m+μ}(x)
//
//	It shows up wherever multipole expansions are multiplied: wave scattering,
//	translation theorems for spherical waves, Casimir and T-matrix codes.
//
// ✨ Key features:
//   - qmax = min(n, ν, ⌊(n+ν−|m+μ|)/2⌋) in closed form
//   - a0 evaluated through log-gamma, finite for degrees in the hundreds
//   - ã(0..qmax) from Xu's recurrences, with per-q fallback from the
//     three-term recurrence to a two-term or four-term one when the leading
//     coefficient vanishes
//   - allocation-free Fill into a caller buffer
//   - opt-in validation and strict finiteness checks; a branch hook to observe
//     which recurrence produced each coefficient
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gaunt/gaunt"
//
//	qmax, a0, coeffs := gaunt.Gaunt(2, 2, 0, 0)
//	// qmax=2, a0=18/35, coeffs=[1 5/9 7/18]
//
//	res, err := gaunt.Compute(gaunt.Params{N: 500, Nu: 500, M: 400, Mu: 400},
//	    gaunt.WithValidation(), gaunt.WithStrictFinite())
//
// Preconditions:
//
//	|m| ≤ n and |μ| ≤ ν with n, ν ≥ 0. Gaunt does not check them; outside
//	that domain the numbers are meaningless (NaN/Inf or garbage). Pass
//	WithValidation to Compute or Fill to have them enforced.
//
// Performance:
//
//   - Time:   O(qmax)
//   - Memory: O(qmax) for the result, O(1) with Fill
//
// Reference: Y.-L. Xu, J. Comp. Appl. Math. 85, 53 (1997), chapter 3.
package gaunt
