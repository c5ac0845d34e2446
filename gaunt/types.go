// SPDX-License-Identifier: MIT

package gaunt

import "fmt"

// Params holds the degrees and orders of the two Legendre factors
// P_N^M and P_Nu^Mu.
type Params struct {
	N  int // degree n of the first factor
	Nu int // degree ν of the second factor
	M  int // order m of the first factor
	Mu int // order μ of the second factor
}

// Swap returns the parameters of the reversed product P_ν^μ·P_n^m.
// The expansion is invariant under the swap.
func (p Params) Swap() Params {
	return Params{N: p.Nu, Nu: p.N, M: p.Mu, Mu: p.M}
}

// QMax is shorthand for QMax(p.N, p.Nu, p.M, p.Mu).
func (p Params) QMax() int { return QMax(p.N, p.Nu, p.M, p.Mu) }

// A0 is shorthand for A0(p.N, p.Nu, p.M, p.Mu).
func (p Params) A0() float64 { return A0(p.N, p.Nu, p.M, p.Mu) }

// Valid reports whether p lies in the physical domain n, ν ≥ 0, |m| ≤ n,
// |μ| ≤ ν. The returned error wraps ErrNegativeDegree or ErrOrderExceedsDegree.
func (p Params) Valid() error {
	if p.N < 0 {
		return fmt.Errorf("n=%d: %w", p.N, ErrNegativeDegree)
	}
	if p.Nu < 0 {
		return fmt.Errorf("nu=%d: %w", p.Nu, ErrNegativeDegree)
	}
	if abs(p.M) > p.N {
		return fmt.Errorf("m=%d, n=%d: %w", p.M, p.N, ErrOrderExceedsDegree)
	}
	if abs(p.Mu) > p.Nu {
		return fmt.Errorf("mu=%d, nu=%d: %w", p.Mu, p.Nu, ErrOrderExceedsDegree)
	}

	return nil
}

// String renders p as "(n, ν, m, μ)".
func (p Params) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", p.N, p.Nu, p.M, p.Mu)
}

// Result is the outcome of a Gaunt computation.
type Result struct {
	// QMax is the upper summation index; len(Coeffs) == QMax+1.
	QMax int

	// A0 is the prefactor shared by all terms.
	A0 float64

	// Coeffs holds the normalized coefficients ã(0..QMax); Coeffs[0] == 1.
	Coeffs []float64
}

// Branch identifies the formula that produced a coefficient.
type Branch uint8

const (
	// BranchBootstrap marks ã(1) and ã(2), taken from closed forms.
	BranchBootstrap Branch = iota

	// BranchThreeTerm is the generic recurrence, used when A(p+4) ≠ 0.
	BranchThreeTerm

	// BranchTwoTerm is the reduced recurrence for A(p+4) = A(p+6) = 0.
	BranchTwoTerm

	// BranchFourTerm is the extended recurrence for A(p+4) = 0, A(p+6) ≠ 0.
	BranchFourTerm
)

// String returns a short human-readable name.
func (b Branch) String() string {
	switch b {
	case BranchBootstrap:
		return "bootstrap"
	case BranchThreeTerm:
		return "three-term"
	case BranchTwoTerm:
		return "two-term"
	case BranchFourTerm:
		return "four-term"
	default:
		return fmt.Sprintf("Branch(%d)", uint8(b))
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
