// SPDX-License-Identifier: MIT

// Package angle provides a small Angle value type that always stores
// radians, plus degree/radian conversions.
package angle

import (
	"fmt"

	"github.com/chewxy/math32"
)

// degPerRad and radPerDeg are the conversion factors between the two units.
const (
	degPerRad = 180 / math32.Pi
	radPerDeg = math32.Pi / 180
)

// ToRadians converts degrees to radians.
func ToRadians(degrees float32) float32 { return degrees * radPerDeg }

// ToDegrees converts radians to degrees.
func ToDegrees(radians float32) float32 { return radians * degPerRad }

// Angle is a plane angle. The zero value is 0 rad.
type Angle struct {
	rad float32 // always radians
}

// FromDegrees builds an Angle from degrees.
func FromDegrees(degrees float32) Angle { return Angle{rad: ToRadians(degrees)} }

// FromRadians builds an Angle from radians.
func FromRadians(radians float32) Angle { return Angle{rad: radians} }

// Radians returns the angle in radians.
func (a Angle) Radians() float32 { return a.rad }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float32 { return ToDegrees(a.rad) }

// Add returns a + b.
func (a Angle) Add(b Angle) Angle { return Angle{rad: a.rad + b.rad} }

// Sub returns a - b.
func (a Angle) Sub(b Angle) Angle { return Angle{rad: a.rad - b.rad} }

// Scale returns k·a.
func (a Angle) Scale(k float32) Angle { return Angle{rad: a.rad * k} }

// Half returns a/2, the form rotation quaternions and projections consume.
func (a Angle) Half() Angle { return Angle{rad: a.rad / 2} }

// Sin returns sin(a).
func (a Angle) Sin() float32 { return math32.Sin(a.rad) }

// Cos returns cos(a).
func (a Angle) Cos() float32 { return math32.Cos(a.rad) }

// Tan returns tan(a).
func (a Angle) Tan() float32 { return math32.Tan(a.rad) }

// Sincos returns sin(a) and cos(a) in a single call.
func (a Angle) Sincos() (sin, cos float32) { return math32.Sincos(a.rad) }

// String implements fmt.Stringer.
func (a Angle) String() string { return fmt.Sprintf("%grad", a.rad) }
