// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for projection and presentation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state. The print layout is a
//     per-call option, not a package switch.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// Handedness selects the coordinate-system convention of Perspective.
type Handedness int

const (
	// RightHanded is the OpenGL-style convention (camera looks down -Z).
	RightHanded Handedness = iota
	// LeftHanded is recognised but not implemented; Perspective returns
	// ErrNotImplemented for it.
	LeftHanded
)

// Layout selects how Render lays out a matrix.
type Layout int

const (
	// LayoutGrid prints rows between vertical bars.
	LayoutGrid Layout = iota
	// LayoutLinear prints one "name:\tvalue" line per named field.
	LayoutLinear
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultHandedness is the projection convention used when none is given.
	DefaultHandedness = RightHanded

	// DefaultLayout is the layout of String and of Render without options.
	DefaultLayout = LayoutGrid

	// DefaultPrecision < 0 formats scalars with %v.
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicHandednessInvalid = "matrix: WithHandedness: unknown handedness"
	panicLayoutInvalid     = "matrix: WithLayout: unknown layout"
	panicPrecisionInvalid  = "matrix: WithPrecision: precision must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	handedness Handedness // DefaultHandedness
	layout     Layout     // DefaultLayout
	precision  int        // DefaultPrecision
}

// WithHandedness selects the projection convention.
// Panics on a value other than RightHanded or LeftHanded.
func WithHandedness(h Handedness) Option {
	if h != RightHanded && h != LeftHanded {
		panic(panicHandednessInvalid)
	}

	return func(o *Options) { o.handedness = h }
}

// WithLayout selects the Render layout.
// Panics on a value other than LayoutGrid or LayoutLinear.
func WithLayout(l Layout) Option {
	if l != LayoutGrid && l != LayoutLinear {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// WithPrecision renders every scalar with p fixed decimals.
//
// Errors:
//   - Panics when p < 0.
//
// Notes:
//   - Integer matrices are converted through float64 when p is set,
//     so WithPrecision(0) prints them without a fraction.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// gatherOptions applies user setters over the documented defaults in order;
// the last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		handedness: DefaultHandedness,
		layout:     DefaultLayout,
		precision:  DefaultPrecision,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
