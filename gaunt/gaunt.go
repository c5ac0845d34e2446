// SPDX-License-Identifier: MIT

package gaunt

import (
	"fmt"
	"math"
)

// Gaunt computes the Gaunt expansion of P_n^m·P_ν^μ.
// Returns (qmax, a0, coeffs) with len(coeffs) == qmax+1 and coeffs[0] == 1.
//
// Algorithm outline:
//  1. qmax = min(n, ν, ⌊(n+ν−|m+μ|)/2⌋); a0 from log-gamma terms.
//  2. ã(0) = 1; ã(1), ã(2) from closed forms.
//  3. For q = 3..qmax pick the three-term, two-term or four-term recurrence
//     from the zero pattern of A(p+4), A(p+6), with p = n+ν−2q.
//
// No validation is done: the caller guarantees |m| ≤ n, |μ| ≤ ν. A zero
// divisor inside the recurrence propagates as NaN/Inf into the remaining
// coefficients. If qmax < 0, coeffs is nil.
//
// Complexity: O(qmax) time and memory.
func Gaunt(n, nu, m, mu int) (qmax int, a0 float64, coeffs []float64) {
	res, err := Compute(Params{N: n, Nu: nu, M: m, Mu: mu})
	if err != nil {
		return res.QMax, res.A0, nil
	}

	return res.QMax, res.A0, res.Coeffs
}

// Compute is Gaunt with options and an explicit error.
// With no options the only possible error is ErrNoTerms.
//
// Errors:
//   - ErrNegativeDegree, ErrOrderExceedsDegree: WithValidation and p invalid.
//   - ErrNoTerms: qmax < 0.
//   - ErrDegenerateRecurrence, ErrNonFinite: WithStrictFinite.
func Compute(p Params, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	if o.Validate {
		if err := p.Valid(); err != nil {
			return Result{}, err
		}
	}

	res := Result{QMax: p.QMax(), A0: p.A0()}
	if res.QMax < 0 {
		return res, fmt.Errorf("%v: qmax=%d: %w", p, res.QMax, ErrNoTerms)
	}

	res.Coeffs = make([]float64, res.QMax+1)
	if err := run(res.Coeffs, newParams(p), res.A0, o); err != nil {
		return res, fmt.Errorf("%v: %w", p, err)
	}

	return res, nil
}

// Fill writes ã(0..qmax) into dst[:qmax+1] and returns qmax and a0.
// dst must have length at least qmax+1; entries past qmax are left untouched.
// Fill does not allocate, so one buffer of length min(n, ν)+1 can be reused
// across calls.
//
// Errors are those of Compute plus ErrBufferTooSmall.
func Fill(dst []float64, p Params, opts ...Option) (qmax int, a0 float64, err error) {
	o := gatherOptions(opts)
	if o.Validate {
		if err = p.Valid(); err != nil {
			return 0, 0, err
		}
	}

	qmax, a0 = p.QMax(), p.A0()
	if qmax < 0 {
		return qmax, a0, fmt.Errorf("%v: qmax=%d: %w", p, qmax, ErrNoTerms)
	}
	if len(dst) < qmax+1 {
		return qmax, a0, fmt.Errorf("len(dst)=%d, need %d: %w", len(dst), qmax+1, ErrBufferTooSmall)
	}

	if err = run(dst[:qmax+1], newParams(p), a0, o); err != nil {
		return qmax, a0, fmt.Errorf("%v: %w", p, err)
	}

	return qmax, a0, nil
}

// run fills a, whose length is qmax+1, left to right. Each entry is set
// exactly once and depends only on entries before it.
func run(a []float64, c params, a0 float64, o Options) error {
	if o.StrictFinite && !isFinite(a0) {
		return fmt.Errorf("a0=%v: %w", a0, ErrNonFinite)
	}

	qmax := len(a) - 1
	a[0] = 1
	if qmax == 0 {
		return nil
	}

	a[1] = c.a1()
	if err := observe(o, 1, BranchBootstrap, a[1]); err != nil {
		return err
	}
	if qmax == 1 {
		return nil
	}

	a[2] = c.a2()
	if err := observe(o, 2, BranchBootstrap, a[2]); err != nil {
		return err
	}

	for q := 3; q <= qmax; q++ {
		v, b, divisor := c.step(q, a)
		if o.StrictFinite && divisor == 0 {
			return fmt.Errorf("q=%d, %s branch: %w", q, b, ErrDegenerateRecurrence)
		}
		a[q] = v
		if err := observe(o, q, b, v); err != nil {
			return err
		}
	}

	return nil
}

// observe reports q to the branch hook and applies the strict finiteness check.
func observe(o Options, q int, b Branch, v float64) error {
	if o.OnBranch != nil {
		o.OnBranch(q, b)
	}
	if o.StrictFinite && !isFinite(v) {
		return fmt.Errorf("q=%d, %s branch, value %v: %w", q, b, v, ErrNonFinite)
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
