// SPDX-License-Identifier: MIT

package gaunt

// Option configures Compute and Fill via functional arguments.
// Applying the same Option twice is harmless.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// The zero value is the faithful mode: no validation, non-finite values
// propagate silently, no hook.
type Options struct {
	// Validate rejects parameters outside n, ν ≥ 0, |m| ≤ n, |μ| ≤ ν.
	Validate bool

	// StrictFinite turns zero denominators and NaN/Inf into errors.
	StrictFinite bool

	// OnBranch, if set, is called once per coefficient q ≥ 1 with the
	// branch that produced it.
	OnBranch func(q int, b Branch)
}

// DefaultOptions returns the faithful configuration.
func DefaultOptions() Options {
	return Options{}
}

// WithValidation enables the domain check of Params.Valid before computing.
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// WithStrictFinite makes Compute and Fill fail with ErrDegenerateRecurrence
// when a recurrence denominator is exactly zero, and with ErrNonFinite when a0
// or any coefficient is NaN or ±Inf.
func WithStrictFinite() Option {
	return func(o *Options) {
		o.StrictFinite = true
	}
}

// WithBranchHook registers fn to observe the branch taken for every q ≥ 1.
// A nil fn is ignored.
func WithBranchHook(fn func(q int, b Branch)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBranch = fn
		}
	}
}

// gatherOptions folds opts over DefaultOptions. nil entries are skipped.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
