// Package kinematics converts between wheel-level motion and chassis motion for the supported
// drivetrain topologies.
//
// All chassis quantities are robot relative: +Y is forward, +X is right and Omega is the
// counter-clockwise turn rate in degrees per second.
package kinematics

import (
	"fmt"

	"go.viam.com/pathfollow/utils"
)

// ChassisSpeeds is the instantaneous robot-relative motion of a chassis.
type ChassisSpeeds struct {
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Omega float64 `json:"omega_degs_per_sec"`
}

// Sanitized returns the speeds with every non-finite component replaced by zero.
func (cs ChassisSpeeds) Sanitized() ChassisSpeeds {
	return ChassisSpeeds{
		VX:    utils.ZeroIfNotFinite(cs.VX),
		VY:    utils.ZeroIfNotFinite(cs.VY),
		Omega: utils.ZeroIfNotFinite(cs.Omega),
	}
}

func (cs ChassisSpeeds) String() string {
	return fmt.Sprintf("chassis(vx=%.3f, vy=%.3f, omega=%.3f)", cs.VX, cs.VY, cs.Omega)
}
