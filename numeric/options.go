// SPDX-License-Identifier: MIT

// Package numeric: functional configuration for approximate comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package numeric

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsTol is the absolute tolerance used by Close when no option overrides it.
	DefaultAbsTol = 1e-9

	// DefaultRelTol is the relative tolerance (scaled by |b|) used by Close.
	DefaultRelTol = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAbsTolInvalid = "numeric: WithAbsTol: atol must be finite, non-negative"
	panicRelTolInvalid = "numeric: WithRelTol: rtol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective tolerance policy after applying Option setters.
type Options struct {
	atol float64 // >= 0; DefaultAbsTol
	rtol float64 // >= 0; DefaultRelTol
}

// NewOptions resolves the defaults and applies opts in order.
// Later options win over earlier ones.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func NewOptions(opts ...Option) Options {
	o := Options{atol: DefaultAbsTol, rtol: DefaultRelTol}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// AbsTol reports the effective absolute tolerance.
func (o Options) AbsTol() float64 { return o.atol }

// RelTol reports the effective relative tolerance.
func (o Options) RelTol() float64 { return o.rtol }

// WithAbsTol sets the absolute tolerance atol.
// Implementation:
//   - Stage 1: validate atol is finite and ≥ 0.
//   - Stage 2: return a setter that writes atol into Options.
//
// Errors:
//   - Panics with a stable message when atol is invalid.
//
// Notes:
//   - float32 data rarely holds better than 1e-6 after a few products;
//     float64 data is usually fine with the default.
func WithAbsTol(atol float64) Option {
	if isNonFinite(atol) || atol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithRelTol sets the relative tolerance rtol.
// Panics with a stable message when rtol is negative or non-finite.
func WithRelTol(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
