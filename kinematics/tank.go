package kinematics

import (
	"github.com/pkg/errors"

	"go.viam.com/pathfollow/utils"
)

// TankWheelSpeeds are the surface speeds of the two sides of a differential drive.
type TankWheelSpeeds struct {
	Left  float64
	Right float64
}

// Tank models a differential drive with the given distance between wheel centers.
type Tank struct {
	TrackWidth float64
}

// NewTank returns a differential drive model.
func NewTank(trackWidth float64) (*Tank, error) {
	if trackWidth <= 0 {
		return nil, errors.Errorf("track width must be positive, got %v", trackWidth)
	}
	return &Tank{TrackWidth: trackWidth}, nil
}

// ToChassisSpeeds converts wheel speeds into chassis motion.
func (t *Tank) ToChassisSpeeds(wheels TankWheelSpeeds) ChassisSpeeds {
	return ChassisSpeeds{
		VY:    (wheels.Left + wheels.Right) / 2,
		Omega: utils.RadToDeg((wheels.Right - wheels.Left) / t.TrackWidth),
	}.Sanitized()
}

// ToWheelSpeeds converts chassis motion into wheel speeds. VX is ignored, a tank cannot strafe.
func (t *Tank) ToWheelSpeeds(speeds ChassisSpeeds) TankWheelSpeeds {
	turn := utils.DegToRad(speeds.Omega) * t.TrackWidth / 2
	return TankWheelSpeeds{
		Left:  speeds.VY - turn,
		Right: speeds.VY + turn,
	}
}
