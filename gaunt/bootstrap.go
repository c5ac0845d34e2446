// SPDX-License-Identifier: MIT

package gaunt

// The recurrence in step needs three earlier values, so ã(1) and ã(2) come
// from closed forms instead. Both divide by 2n−1, 2ν−1 and n4 = n+ν−m−μ
// (ã(2) also by 2n−3, 2ν−3, n4−2, n4−3). None of these vanish when qmax is
// large enough for the coefficient to be requested and the parameters are
// valid; outside that domain the float division yields NaN or ±Inf.

// a1 is ã(1), Xu eq. (29).
func (c params) a1() float64 {
	n, nu, m, mu := float64(c.n), float64(c.nu), float64(c.m), float64(c.mu)
	n4 := n + nu - m - mu

	return (n + nu - 1.5) * (1 - (2*n+2*nu-1)/(n4*(n4-1))*
		((m-n)*(m-n+1)/(2*n-1)+(mu-nu)*(mu-nu+1)/(2*nu-1)))
}

// a2 is ã(2), Xu eq. (35).
func (c params) a2() float64 {
	n, nu, m, mu := float64(c.n), float64(c.nu), float64(c.m), float64(c.mu)
	n4 := n + nu - m - mu
	s := 2*n + 2*nu

	// falling products of (m−n) and (μ−ν)
	x2 := (m - n) * (m - n + 1)
	y2 := (mu - nu) * (mu - nu + 1)
	x4 := x2 * (m - n + 2) * (m - n + 3)
	y4 := y2 * (mu - nu + 2) * (mu - nu + 3)

	quartic := x4/((2*n-1)*(2*n-3)) +
		2*x2*y2/((2*n-1)*(2*nu-1)) +
		y4/((2*nu-1)*(2*nu-3))

	inner := (s-5)/(2*(n4-2)*(n4-3))*quartic - x2/(2*n-1) - y2/(2*nu-1)

	return (s - 1) * (s - 7) / 4 * ((s-3)/(n4*(n4-1))*inner + 0.5)
}
