package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Frame identifies which axes a Translation is expressed in.
type Frame int

const (
	// FieldRelative translations use the world axes.
	FieldRelative Frame = iota
	// RobotRelative translations use the robot's heading-relative axes.
	RobotRelative
)

func (f Frame) String() string {
	switch f {
	case FieldRelative:
		return "field"
	case RobotRelative:
		return "robot"
	default:
		return fmt.Sprintf("Frame(%d)", int(f))
	}
}

// Translation is a velocity command: X and Y are linear components and Z is the turn rate.
// Values are expected in roughly [-1, 1] but are not clamped here.
type Translation struct {
	r3.Vector
	Frame Frame
}

// ZeroTranslation commands no motion.
var ZeroTranslation = Translation{Frame: RobotRelative}

// NewTranslation builds a translation in the given frame.
func NewTranslation(vx, vy, vz float64, frame Frame) Translation {
	return Translation{Vector: r3.Vector{X: vx, Y: vy, Z: vz}, Frame: frame}
}

// IsZero reports whether every component is zero.
func (t Translation) IsZero() bool {
	return t.Vector == r3.Vector{}
}

// ToRobotRelative rotates a field-relative translation into the axes of a robot facing heading.
// Robot-relative input is returned unchanged.
func (t Translation) ToRobotRelative(heading Angle) Translation {
	if t.Frame == RobotRelative {
		return t
	}
	sin, cos := heading.Sin(), heading.Cos()
	return NewTranslation(
		t.X*cos+t.Y*sin,
		-t.X*sin+t.Y*cos,
		t.Z,
		RobotRelative,
	)
}

// ToFieldRelative rotates a robot-relative translation into world axes for a robot facing heading.
// Field-relative input is returned unchanged.
func (t Translation) ToFieldRelative(heading Angle) Translation {
	if t.Frame == FieldRelative {
		return t
	}
	sin, cos := heading.Sin(), heading.Cos()
	return NewTranslation(
		t.X*cos-t.Y*sin,
		t.X*sin+t.Y*cos,
		t.Z,
		FieldRelative,
	)
}

// Multiply scales every component.
func (t Translation) Multiply(factor float64) Translation {
	return Translation{Vector: t.Vector.Mul(factor), Frame: t.Frame}
}

func (t Translation) String() string {
	return fmt.Sprintf("%s(%.3f, %.3f, %.3f)", t.Frame, t.X, t.Y, t.Z)
}
