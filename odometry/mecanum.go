package odometry

import (
	"go.viam.com/pathfollow/kinematics"
	"go.viam.com/pathfollow/spatialmath"
)

// MecanumOdometry integrates mecanum wheel velocities over time, with heading from a gyro.
type MecanumOdometry struct {
	velocityIntegrator
	kinematics *kinematics.Mecanum
	wheels     func() kinematics.MecanumWheelSpeeds
	gyro       func() spatialmath.Angle
}

// NewMecanumOdometry returns a mecanum odometry.
func NewMecanumOdometry(
	model *kinematics.Mecanum,
	wheels func() kinematics.MecanumWheelSpeeds,
	gyro func() spatialmath.Angle,
	opts ...Option,
) (*MecanumOdometry, error) {
	if model == nil || wheels == nil || gyro == nil {
		return nil, ErrNilSupplier
	}
	o := &MecanumOdometry{
		kinematics: model,
		wheels:     wheels,
		gyro:       gyro,
	}
	o.init(newOptions(opts))
	return o, nil
}

// Update implements Odometry.
func (m *MecanumOdometry) Update() spatialmath.Pose {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.integrate(m.kinematics.ToChassisSpeeds(m.wheels()), m.heading(m.gyro))
	return m.position()
}
