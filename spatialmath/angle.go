// Package spatialmath defines the planar angle, pose and translation types every trajectory,
// odometry and follower computation is expressed in.
//
// Conventions: a heading of 0 faces +Y and positive angles rotate counter-clockwise. In the
// robot frame +Y is forward, +X is to the right and Z carries the turn rate.
package spatialmath

import (
	"fmt"
	"math"

	"go.viam.com/pathfollow/utils"
)

// Angle is an immutable planar angle with consistent degree and radian views. Add and Sub do not
// wrap; the *Fixed variants and Fix wrap into [0, 360).
type Angle struct {
	deg float64
}

// ZeroAngle is 0 degrees.
var ZeroAngle = Angle{}

// NewAngleDegrees returns an angle of deg degrees without normalizing it.
func NewAngleDegrees(deg float64) Angle {
	return Angle{deg: deg}
}

// NewAngleRadians returns an angle of rad radians without normalizing it.
func NewAngleRadians(rad float64) Angle {
	return Angle{deg: utils.RadToDeg(rad)}
}

// FixedDegrees returns deg normalized into [0, 360).
func FixedDegrees(deg float64) Angle {
	return Angle{deg: utils.ModAngDeg(deg)}
}

// FixedRadians returns rad normalized into [0, 2π).
func FixedRadians(rad float64) Angle {
	return FixedDegrees(utils.RadToDeg(rad))
}

// Deg returns the angle in degrees.
func (a Angle) Deg() float64 {
	return a.deg
}

// Rad returns the angle in radians.
func (a Angle) Rad() float64 {
	return utils.DegToRad(a.deg)
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(a.Rad())
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(a.Rad())
}

// Add returns a+b without wrapping.
func (a Angle) Add(b Angle) Angle {
	return Angle{deg: a.deg + b.deg}
}

// Sub returns a-b without wrapping.
func (a Angle) Sub(b Angle) Angle {
	return Angle{deg: a.deg - b.deg}
}

// AddFixed returns a+b wrapped into [0, 360).
func (a Angle) AddFixed(b Angle) Angle {
	return FixedDegrees(a.deg + b.deg)
}

// SubFixed returns a-b wrapped into [0, 360).
func (a Angle) SubFixed(b Angle) Angle {
	return FixedDegrees(a.deg - b.deg)
}

// Multiply scales the angle without wrapping.
func (a Angle) Multiply(factor float64) Angle {
	return Angle{deg: a.deg * factor}
}

// Negate returns -a without wrapping.
func (a Angle) Negate() Angle {
	return Angle{deg: -a.deg}
}

// Fix wraps the angle into [0, 360).
func (a Angle) Fix() Angle {
	return FixedDegrees(a.deg)
}

// IsFinite reports whether the angle is neither NaN nor infinite.
func (a Angle) IsFinite() bool {
	return !math.IsNaN(a.deg) && !math.IsInf(a.deg, 0)
}

func (a Angle) String() string {
	return fmt.Sprintf("%.3f deg", a.deg)
}

// MinimumDelta returns the signed shortest rotation in degrees that takes from onto to. The
// result lies in (-180, 180]; positive is counter-clockwise.
func MinimumDelta(from, to Angle) float64 {
	delta := utils.ModAngDeg(to.deg - from.deg)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// AngleDelta returns the unsigned shortest distance in degrees between two angles.
func AngleDelta(a, b Angle) float64 {
	return utils.AngleDiffDeg(utils.ModAngDeg(a.deg), utils.ModAngDeg(b.deg))
}

// IsCloseTo reports whether a is within tolerance of b along the shorter way round.
func (a Angle) IsCloseTo(b, tolerance Angle) bool {
	return AngleDelta(a, b) <= math.Abs(tolerance.deg)
}
