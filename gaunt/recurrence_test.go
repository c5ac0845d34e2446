// SPDX-License-Identifier: MIT

package gaunt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaunt/gaunt"
)

// TestAP_Values checks A(p) = p(p−1)(m−μ) − (m+μ)(n−ν)(n+ν+1) by hand.
func TestAP_Values(t *testing.T) {
	// (4, 7, 1, 3): A(p) = −2p(p−1) + 144
	p := gaunt.Params{N: 4, Nu: 7, M: 1, Mu: 3}
	assert.Equal(t, 144.0, gaunt.ExportedAP(p, 0))
	assert.Equal(t, 144.0, gaunt.ExportedAP(p, 1))
	assert.Equal(t, 0.0, gaunt.ExportedAP(p, 9), "A(9) vanishes: four-term fallback at q=3")
	assert.True(t, gaunt.ExportedAPZero(p, 9))
	assert.Equal(t, -76.0, gaunt.ExportedAP(p, 11))
	assert.False(t, gaunt.ExportedAPZero(p, 11))

	// m = μ = 0 makes A identically zero.
	z := gaunt.Params{N: 6, Nu: 6}
	for x := -3; x < 20; x++ {
		require.Zero(t, gaunt.ExportedAP(z, x))
		require.True(t, gaunt.ExportedAPZero(z, x))
	}
}

// TestAP_LargeDegree uses triple products beyond int64: for (3e6, 0, 2e6, 0)
// A(p) = 2e6·(p(p−1) − 3e6·(3e6+1)), which vanishes at p = 3e6+1.
func TestAP_LargeDegree(t *testing.T) {
	p := gaunt.Params{N: 3_000_000, Nu: 0, M: 2_000_000, Mu: 0}

	assert.True(t, gaunt.ExportedAPZero(p, 3_000_001))
	assert.False(t, gaunt.ExportedAPZero(p, 3_000_002))
	assert.True(t, gaunt.ExportedAPZero(p, -3_000_000), "A(1−p) = A(p)")

	// 2e6·(3000003·3000002 − 3000000·3000001) = 2e6·12000006
	assert.InEpsilon(t, 2.4000012e13, gaunt.ExportedAP(p, 3_000_003), 1e-9)
}

// TestAlpha_Values checks α(p) = (p²−(n+ν+1)²)(p²−(n−ν)²)/(4p²−1).
func TestAlpha_Values(t *testing.T) {
	p := gaunt.Params{N: 2, Nu: 2}
	assert.Equal(t, -8.0, gaunt.ExportedAlpha(p, 1))
	assert.InDelta(t, -144.0/35.0, gaunt.ExportedAlpha(p, 3), 1e-15)
	assert.Equal(t, 0.0, gaunt.ExportedAlpha(p, 5), "p = n+ν+1 is a root")
	assert.Equal(t, 0.0, gaunt.ExportedAlpha(p, 0), "p = |n−ν| is a root")

	q := gaunt.Params{N: 3, Nu: 3}
	assert.Equal(t, -16.0, gaunt.ExportedAlpha(q, 1))
	assert.Equal(t, -12.0, gaunt.ExportedAlpha(q, 2))
}

// TestAlpha_LargeDegree keeps the sign once the numerator exceeds int64:
// α(56000) for n = ν = 40000 is about −8.16e8.
func TestAlpha_LargeDegree(t *testing.T) {
	got := gaunt.ExportedAlpha(gaunt.Params{N: 40000, Nu: 40000}, 56000)

	want := -3264160001.0 * 3136000000.0 / 12543999999.0
	assert.Negative(t, got)
	assert.InEpsilon(t, want, got, 1e-12)
}

// TestStep_TwoTerm checks ã(3) for n = ν = 3, m = μ = 0:
// ã(3) = α(2)/α(1) · ã(2) = (−12/−16) · 0.44.
func TestStep_TwoTerm(t *testing.T) {
	p := gaunt.Params{N: 3, Nu: 3}
	a := []float64{1, 0.54, 0.44, 0}

	v, b, divisor := gaunt.ExportedStep(p, 3, a)
	assert.Equal(t, gaunt.BranchTwoTerm, b)
	assert.InDelta(t, 0.33, v, 1e-15)
	assert.Equal(t, -32.0, divisor, "(p+2)(p1+1)α(p+1) at p=0")
}

// TestStep_BranchPrecedence walks a parameter set where the branch changes
// from one q to the next and checks the choice against A(p+4), A(p+6).
func TestStep_BranchPrecedence(t *testing.T) {
	p := gaunt.Params{N: 4, Nu: 10, M: 0, Mu: 2}
	res, err := gaunt.Compute(p)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.QMax, 4)

	seen := map[gaunt.Branch]bool{}
	for q := 3; q <= res.QMax; q++ {
		pp := p.N + p.Nu - 2*q
		_, b, _ := gaunt.ExportedStep(p, q, res.Coeffs)

		switch {
		case !gaunt.ExportedAPZero(p, pp+4):
			assert.Equal(t, gaunt.BranchThreeTerm, b, "q=%d", q)
		case gaunt.ExportedAPZero(p, pp+6):
			assert.Equal(t, gaunt.BranchTwoTerm, b, "q=%d", q)
		default:
			assert.Equal(t, gaunt.BranchFourTerm, b, "q=%d", q)
		}
		seen[b] = true
	}
	assert.True(t, seen[gaunt.BranchThreeTerm])
	assert.True(t, seen[gaunt.BranchFourTerm])
}

// TestStep_DependsOnlyOnEarlierEntries poisons a[q..] and checks that ã(q)
// is unaffected.
func TestStep_DependsOnlyOnEarlierEntries(t *testing.T) {
	p := gaunt.Params{N: 9, Nu: 8, M: 3, Mu: -1}
	res, err := gaunt.Compute(p)
	require.NoError(t, err)

	for q := 3; q <= res.QMax; q++ {
		a := append([]float64(nil), res.Coeffs...)
		for i := q; i < len(a); i++ {
			a[i] = math.NaN()
		}
		v, _, _ := gaunt.ExportedStep(p, q, a)
		assert.Equal(t, res.Coeffs[q], v, "q=%d", q)
	}
}

// TestRun_DegenerateDivisor drives the loop one step past qmax for
// (3, 3, 1, 0), where p1+1 = 0 zeroes the three-term divisor. Faithful mode
// lets the division produce a non-finite value; strict mode reports it.
func TestRun_DegenerateDivisor(t *testing.T) {
	p := gaunt.Params{N: 3, Nu: 3, M: 1, Mu: 0}
	require.Equal(t, 2, p.QMax())

	_, b, divisor := gaunt.ExportedStep(p, 3, []float64{1, 1, 1, 0})
	require.Equal(t, gaunt.BranchThreeTerm, b)
	require.Zero(t, divisor)

	a := make([]float64, 4)
	require.NoError(t, gaunt.ExportedRun(a, p))
	assert.True(t, math.IsInf(a[3], 0) || math.IsNaN(a[3]), "got %v", a[3])

	a = make([]float64, 4)
	err := gaunt.ExportedRun(a, p, gaunt.WithStrictFinite())
	require.ErrorIs(t, err, gaunt.ErrDegenerateRecurrence)
	assert.Contains(t, err.Error(), "q=3")
	assert.Contains(t, err.Error(), "three-term")
	assert.Zero(t, a[3], "strict mode stops before storing the value")
}

// TestBootstrap_ClosedForms checks ã(1), ã(2) against hand-derived values.
func TestBootstrap_ClosedForms(t *testing.T) {
	cases := []struct {
		p    gaunt.Params
		want []float64
	}{
		{gaunt.Params{N: 2, Nu: 2}, []float64{1, 5.0 / 9.0, 7.0 / 18.0}},
		{gaunt.Params{N: 3, Nu: 3}, []float64{1, 0.54, 0.44}},
		{gaunt.Params{N: 4, Nu: 7, M: 1, Mu: 3}, []float64{1, 1.0439560439560445, 2.4545454545454555}},
		{gaunt.Params{N: 5, Nu: 3, M: 2, Mu: -1}, []float64{1, -0.6190476190476183, -1.371428571428566}},
	}
	for _, tc := range cases {
		res, err := gaunt.Compute(tc.p)
		require.NoError(t, err)
		for q, w := range tc.want {
			assert.InDelta(t, w, res.Coeffs[q], 1e-12, "%v ã(%d)", tc.p, q)
		}
	}
}
