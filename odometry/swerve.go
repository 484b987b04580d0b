package odometry

import (
	"go.viam.com/pathfollow/kinematics"
	"go.viam.com/pathfollow/spatialmath"
)

// SwerveOdometry integrates swerve module states over time, with heading from a gyro.
type SwerveOdometry struct {
	velocityIntegrator
	kinematics *kinematics.Swerve
	modules    func() []kinematics.ModuleState
	gyro       func() spatialmath.Angle
}

// NewSwerveOdometry returns a swerve odometry. modules must report states in the same order
// as the model's module positions.
func NewSwerveOdometry(
	model *kinematics.Swerve,
	modules func() []kinematics.ModuleState,
	gyro func() spatialmath.Angle,
	opts ...Option,
) (*SwerveOdometry, error) {
	if model == nil || modules == nil || gyro == nil {
		return nil, ErrNilSupplier
	}
	o := &SwerveOdometry{
		kinematics: model,
		modules:    modules,
		gyro:       gyro,
	}
	o.init(newOptions(opts))
	return o, nil
}

// Update implements Odometry.
func (s *SwerveOdometry) Update() spatialmath.Pose {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.integrate(s.kinematics.ToChassisSpeeds(s.modules()), s.heading(s.gyro))
	return s.position()
}
