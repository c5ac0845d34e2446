// SPDX-License-Identifier: MIT

package gaunt

import "math"

// QMax returns the upper summation index min(n, ν, ⌊(n+ν−|m+μ|)/2⌋).
// For valid parameters the result is ≥ 0; qmax == 0 is a legal one-term
// expansion. The floor rounds toward −∞, so out-of-domain input gives a
// negative qmax rather than 0.
func QMax(n, nu, m, mu int) int {
	return min(n, nu, floorHalf(n+nu-abs(m+mu)))
}

// floorHalf is ⌊x/2⌋; Go's integer division truncates toward zero instead.
func floorHalf(x int) int {
	return x >> 1
}

// LogA0 returns ln a0 where
//
//	a0 = (2n)!(2ν)!(n+ν)! / (n! ν! (2n+2ν)!) · (n+ν−m−μ)! / ((n−m)! (ν−μ)!)
//
// evaluated as a signed sum of log-gamma terms. Every factorial argument must
// be a non-negative integer; otherwise the result is NaN or ±Inf.
//
// The (n, m) and (ν, μ) terms are summed pairwise before the shared terms are
// added, so LogA0(n, ν, m, μ) and LogA0(ν, n, μ, m) are bit-identical.
func LogA0(n, nu, m, mu int) float64 {
	own := factorTerm(n, m) + factorTerm(nu, mu)
	shared := lgamma(n+nu+1) - lgamma(2*n+2*nu+1) + lgamma(1+n+nu-m-mu)

	return own + shared
}

// A0 returns the prefactor exp(LogA0(n, ν, m, μ)).
// For large degrees a0 can underflow to 0 even though LogA0 is finite.
func A0(n, nu, m, mu int) float64 {
	return math.Exp(LogA0(n, nu, m, mu))
}

// factorTerm is ln[(2k)! / (k! (k−j)!)], the part of ln a0 owned by one factor.
func factorTerm(k, j int) float64 {
	return lgamma(2*k+1) - lgamma(k+1) - lgamma(1+k-j)
}

// lgamma is ln|Γ(x)| at an integer argument. Poles give +Inf.
func lgamma(x int) float64 {
	v, _ := math.Lgamma(float64(x))

	return v
}
