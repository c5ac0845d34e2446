// SPDX-License-Identifier: MIT

package gaunt

import "math/bits"

// params is the read-only context of one computation: the four integers
// the helpers A(p) and α(p) are built from.
type params struct {
	n, nu, m, mu int
}

func newParams(p Params) params {
	return params{n: p.N, nu: p.Nu, m: p.M, mu: p.Mu}
}

// ap is A(p) = p(p−1)(m−μ) − (m+μ)(n−ν)(n+ν+1), Xu eq. (28), in float64.
// Each product is formed from float operands; in int they overflow once the
// degrees reach about 10⁶. Use apZero for the exact test A(p) == 0.
func (c params) ap(p int) float64 {
	fp := float64(p)

	return fp*float64(p-1)*float64(c.m-c.mu) -
		float64(c.m+c.mu)*float64(c.n-c.nu)*float64(c.n+c.nu+1)
}

// apZero reports A(p) == 0 exactly by comparing both triple products in
// 128-bit arithmetic.
func (c params) apZero(p int) bool {
	ln, lhi, llo := prod3(p, p-1, c.m-c.mu)
	rn, rhi, rlo := prod3(c.m+c.mu, c.n-c.nu, c.n+c.nu+1)

	return ln == rn && lhi == rhi && llo == rlo
}

// prod3 returns a·b·c as sign and 128-bit magnitude. |a·b| must fit in 64 bits.
func prod3(a, b, c int) (neg bool, hi, lo uint64) {
	hi, lo = bits.Mul64(uabs(a)*uabs(b), uabs(c))
	if hi == 0 && lo == 0 {
		return false, 0, 0
	}

	return (a < 0) != (b < 0) != (c < 0), hi, lo
}

func uabs(x int) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}

// alpha is α(p) = (p² − (n+ν+1)²)(p² − (n−ν)²) / (4p² − 1), Xu eq. (3).
// The denominator is odd for every integer p and never vanishes. The two
// factors fit in int; their product does not once n+ν passes about 55 000.
func (c params) alpha(p int) float64 {
	s, d := c.n+c.nu+1, c.n-c.nu
	x, y := float64(p*p-s*s), float64(p*p-d*d)

	return x * y / float64(4*p*p-1)
}

// step computes ã(q) for q ≥ 3 from a[q−1], a[q−2] and, for the four-term
// branch, a[q−3]. The branch is chosen afresh on every call:
//
//	A(p+4) ≠ 0               → three-term, Xu eqs. (26), (27)
//	A(p+4) = 0, A(p+6) = 0   → two-term,   Xu eq. (30)
//	A(p+4) = 0, A(p+6) ≠ 0   → four-term,  Xu eqs. (32), (33)
//
// The divisor is returned alongside so callers can detect an exact zero.
// Coefficient products are formed in float64: they overflow int64 for
// degrees in the hundreds.
func (c params) step(q int, a []float64) (value float64, b Branch, divisor float64) {
	p := c.n + c.nu - 2*q
	p1 := p - c.m - c.mu
	p2 := p + c.m + c.mu

	fp, f1, f2 := float64(p), float64(p1), float64(p2)

	if !c.apZero(p + 4) {
		ap2, ap3, ap4 := c.ap(p+2), c.ap(p+3), c.ap(p+4)

		c0 := (fp + 2) * (fp + 3) * (f1 + 1) * (f1 + 2) * ap4 * c.alpha(p+1)
		c1 := ap2*ap3*ap4 +
			(fp+1)*(fp+3)*(f1+2)*(f2+2)*ap4*c.alpha(p+2) +
			(fp+2)*(fp+4)*(f1+3)*(f2+3)*ap2*c.alpha(p+3)
		c2 := -(fp + 2) * (fp + 3) * (f2 + 3) * (f2 + 4) * ap2 * c.alpha(p+4)

		return (c1*a[q-1] + c2*a[q-2]) / c0, BranchThreeTerm, c0
	}

	if c.apZero(p + 6) {
		den := (fp + 2) * (f1 + 1) * c.alpha(p+1)

		return (fp + 1) * (f2 + 2) * c.alpha(p+2) * a[q-1] / den, BranchTwoTerm, den
	}

	ap2, ap3 := c.ap(p+2), c.ap(p+3)
	ap5, ap6 := c.ap(p+5), c.ap(p+6)

	c0 := (fp + 2) * (fp + 3) * (fp + 5) * (f1 + 1) * (f1 + 2) * (f1 + 4) * ap6 * c.alpha(p+1)
	c1 := (fp + 5) * (f1 + 4) * ap6 * (ap2*ap3 + (fp+1)*(fp+3)*(f1+2)*(f2+2)*c.alpha(p+2))
	c2 := (fp + 2) * (f2 + 3) * ap2 * (ap5*ap6 + (fp+4)*(fp+6)*(f1+5)*(f2+5)*c.alpha(p+5))
	c3 := -(fp + 2) * (fp + 4) * (fp + 5) * (f2 + 3) * (f2 + 5) * (f2 + 6) * ap2 * c.alpha(p+6)

	return (c1*a[q-1] + c2*a[q-2] + c3*a[q-3]) / c0, BranchFourTerm, c0
}
