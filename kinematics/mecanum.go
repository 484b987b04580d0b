package kinematics

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/pathfollow/utils"
)

// MecanumWheelSpeeds are the surface speeds of the four wheels of a mecanum drive.
type MecanumWheelSpeeds struct {
	FrontLeft  float64
	FrontRight float64
	RearLeft   float64
	RearRight  float64
}

func (w MecanumWheelSpeeds) slice() []float64 {
	return []float64{w.FrontLeft, w.FrontRight, w.RearLeft, w.RearRight}
}

// Normalized scales all four speeds down so none exceeds maxSpeed in magnitude, keeping
// their ratios.
func (w MecanumWheelSpeeds) Normalized(maxSpeed float64) MecanumWheelSpeeds {
	s := w.slice()
	largest := math.Max(math.Abs(floats.Max(s)), math.Abs(floats.Min(s)))
	if largest <= maxSpeed || largest == 0 {
		return w
	}
	floats.Scale(maxSpeed/largest, s)
	return MecanumWheelSpeeds{FrontLeft: s[0], FrontRight: s[1], RearLeft: s[2], RearRight: s[3]}
}

// Mecanum models a four wheel mecanum drive with rollers in the usual X pattern.
type Mecanum struct {
	WheelBase  float64
	TrackWidth float64
}

// NewMecanum returns a mecanum drive model.
func NewMecanum(wheelBase, trackWidth float64) (*Mecanum, error) {
	if wheelBase <= 0 || trackWidth <= 0 {
		return nil, errors.Errorf("wheel base and track width must be positive, got %v and %v", wheelBase, trackWidth)
	}
	return &Mecanum{WheelBase: wheelBase, TrackWidth: trackWidth}, nil
}

func (m *Mecanum) separation() float64 {
	return (m.WheelBase + m.TrackWidth) / 2
}

// ToChassisSpeeds converts wheel speeds into chassis motion.
func (m *Mecanum) ToChassisSpeeds(wheels MecanumWheelSpeeds) ChassisSpeeds {
	fl, fr, rl, rr := wheels.FrontLeft, wheels.FrontRight, wheels.RearLeft, wheels.RearRight
	return ChassisSpeeds{
		VX:    (fl - fr - rl + rr) / 4,
		VY:    (fl + fr + rl + rr) / 4,
		Omega: utils.RadToDeg((-fl + fr - rl + rr) / (4 * m.separation())),
	}.Sanitized()
}

// ToWheelSpeeds converts chassis motion into wheel speeds.
func (m *Mecanum) ToWheelSpeeds(speeds ChassisSpeeds) MecanumWheelSpeeds {
	spin := m.separation() * utils.DegToRad(speeds.Omega)
	x, y := speeds.VX, speeds.VY
	return MecanumWheelSpeeds{
		FrontLeft:  y + x - spin,
		FrontRight: y - x + spin,
		RearLeft:   y - x - spin,
		RearRight:  y + x + spin,
	}
}
