// SPDX-License-Identifier: MIT

package gaunt

// White-box bridge: exposes the unexported helpers to package gaunt_test
// without widening the production API. Compiled only with `go test`.

var (
	// ExportedAP evaluates A(x) for p.
	ExportedAP = func(p Params, x int) float64 { return newParams(p).ap(x) }

	// ExportedAPZero reports A(x) == 0 exactly for p.
	ExportedAPZero = func(p Params, x int) bool { return newParams(p).apZero(x) }

	// ExportedAlpha evaluates α(x) for p.
	ExportedAlpha = func(p Params, x int) float64 { return newParams(p).alpha(x) }

	// ExportedStep runs one recurrence step for q ≥ 3 over a.
	ExportedStep = func(p Params, q int, a []float64) (float64, Branch, float64) {
		return newParams(p).step(q, a)
	}

	// ExportedRun fills a (of any length ≥ 1) regardless of p's qmax, so
	// tests can drive the loop into indices the public API never reaches.
	ExportedRun = func(a []float64, p Params, opts ...Option) error {
		return run(a, newParams(p), p.A0(), gatherOptions(opts))
	}
)
