package odometry

import (
	"math"

	"go.viam.com/pathfollow/kinematics"
	"go.viam.com/pathfollow/spatialmath"
)

// TankOdometry tracks a differential drive from cumulative wheel distances and a gyro. The gyro
// is authoritative for heading; the wheels supply distance travelled and, when a tank model is
// set, the turn while the gyro reads NaN or infinity.
type TankOdometry struct {
	tracker
	right func() float64
	left  func() float64
	gyro  func() spatialmath.Angle
	model *kinematics.Tank

	lastRight float64
	lastLeft  float64
}

// NewTankOdometry returns a tank odometry reading cumulative right and left wheel distances.
// The start pose and tank model options apply.
func NewTankOdometry(right, left func() float64, gyro func() spatialmath.Angle, opts ...Option) (*TankOdometry, error) {
	if right == nil || left == nil || gyro == nil {
		return nil, ErrNilSupplier
	}
	o := newOptions(opts)
	return &TankOdometry{
		tracker: tracker{raw: o.start},
		right:   right,
		left:    left,
		gyro:    gyro,
		model:   o.tank,
	}, nil
}

// Update implements Odometry.
func (t *TankOdometry) Update() spatialmath.Pose {
	t.mu.Lock()
	defer t.mu.Unlock()

	right := finiteOr(t.right(), t.lastRight)
	left := finiteOr(t.left(), t.lastLeft)
	// a tank model maps distances to distances the same way it maps speeds to speeds
	step := kinematics.TankWheelSpeeds{Left: left - t.lastLeft, Right: right - t.lastRight}
	t.lastRight, t.lastLeft = right, left

	moved := (step.Left + step.Right) / 2
	var heading spatialmath.Angle
	switch gyro := t.gyro(); {
	case gyro.IsFinite():
		heading = gyro.Fix()
	case t.model != nil:
		heading = t.raw.Heading.AddFixed(spatialmath.NewAngleDegrees(t.model.ToChassisSpeeds(step).Omega))
	default:
		heading = t.raw.Heading
	}

	t.raw = t.raw.InDirection(moved, heading).WithHeading(heading)
	return t.position()
}

// finiteOr returns v, or fallback when v is NaN or infinite, so a bad reading produces no motion.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
