// SPDX-License-Identifier: MIT
// Package gaunt: sentinel error set.
// The faithful entry point Gaunt never returns errors; these sentinels are
// produced only by Compute and Fill when the matching option asks for them.
// Callers match with errors.Is; context (q index, branch, parameter) is added
// with fmt.Errorf("...: %w", ErrX).

package gaunt

import "errors"

var (
	// ErrNegativeDegree indicates n < 0 or ν < 0 (WithValidation).
	ErrNegativeDegree = errors.New("gaunt: degree must be non-negative")

	// ErrOrderExceedsDegree indicates |m| > n or |μ| > ν (WithValidation).
	ErrOrderExceedsDegree = errors.New("gaunt: order exceeds degree")

	// ErrDegenerateRecurrence indicates that the selected recurrence branch
	// divides by an exact zero (WithStrictFinite). There is no further fallback.
	ErrDegenerateRecurrence = errors.New("gaunt: degenerate recurrence")

	// ErrNonFinite indicates a NaN or ±Inf in a0 or in a coefficient
	// (WithStrictFinite).
	ErrNonFinite = errors.New("gaunt: NaN or Inf encountered")

	// ErrNoTerms indicates qmax < 0, possible only outside the physical domain.
	ErrNoTerms = errors.New("gaunt: expansion has no terms")

	// ErrBufferTooSmall is returned by Fill when len(dst) < qmax+1.
	ErrBufferTooSmall = errors.New("gaunt: destination buffer too small")
)
