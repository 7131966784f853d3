// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED kernels and the resolved Options to matrix_test ONLY.
//   - Lives in a _test.go file, so it never reaches production builds.

var (
	// ExportedExtractMinor exposes extractMinor for float64.
	ExportedExtractMinor = extractMinor[float64]

	// ExportedFieldIndex exposes fieldIndex.
	ExportedFieldIndex = fieldIndex

	// ExportedNegativeCofactor exposes negativeCofactor.
	ExportedNegativeCofactor = negativeCofactor
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Handedness Handedness
	Layout     Layout
	Precision  int
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Handedness: o.handedness, Layout: o.layout, Precision: o.precision}
}
