// Package odometry fuses wheel and gyro readings into an absolute field pose.
package odometry

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/pathfollow/kinematics"
	"go.viam.com/pathfollow/spatialmath"
	"go.viam.com/pathfollow/utils"
)

// ErrNilSupplier is returned when an odometry is built without one of its sensor suppliers.
var ErrNilSupplier = errors.New("sensor supplier cannot be nil")

// Odometry tracks the pose of a robot on the field.
type Odometry interface {
	// Update reads every sensor once, integrates the motion since the last update and returns
	// the new offset position.
	Update() spatialmath.Pose
	// RawPosition returns the integrated pose without the offset.
	RawPosition() spatialmath.Pose
	// Position returns the raw pose plus the offset.
	Position() spatialmath.Pose
	// OffsetSoPositionIs sets the offset so that Position reports target, leaving the raw
	// track untouched.
	OffsetSoPositionIs(target spatialmath.Pose)
	// RemoveOffset resets the offset to the zero pose.
	RemoveOffset()
	// Offset returns the current offset.
	Offset() spatialmath.Pose
}

// Option configures an odometry.
type Option func(*options)

type options struct {
	clock clock.Clock
	start spatialmath.Pose
	tank  *kinematics.Tank
}

func newOptions(opts []Option) options {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock sets the clock used to measure the time between velocity samples.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithStartPose sets the raw pose the odometry starts from.
func WithStartPose(p spatialmath.Pose) Option {
	return func(o *options) {
		o.start = p
	}
}

// WithTankModel lets a tank odometry derive its turn from the wheels while the gyro reading is
// not finite.
func WithTankModel(m *kinematics.Tank) Option {
	return func(o *options) {
		o.tank = m
	}
}

// tracker holds the raw pose and offset every odometry shares.
type tracker struct {
	mu     sync.Mutex
	raw    spatialmath.Pose
	offset spatialmath.Pose
}

func (t *tracker) RawPosition() spatialmath.Pose {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw
}

func (t *tracker) Position() spatialmath.Pose {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position()
}

func (t *tracker) position() spatialmath.Pose {
	return t.raw.Add(t.offset)
}

func (t *tracker) OffsetSoPositionIs(target spatialmath.Pose) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = target.Sub(t.raw)
}

func (t *tracker) RemoveOffset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = spatialmath.ZeroPose
}

func (t *tracker) Offset() spatialmath.Pose {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offset
}

// heading returns the gyro reading, or the last known heading when the gyro is not finite.
func (t *tracker) heading(gyro func() spatialmath.Angle) spatialmath.Angle {
	h := gyro()
	if !h.IsFinite() {
		return t.raw.Heading
	}
	return h.Fix()
}

// velocityIntegrator turns chassis velocity samples into field displacement.
type velocityIntegrator struct {
	tracker
	clock clock.Clock
	last  time.Time
}

func (v *velocityIntegrator) init(o options) {
	v.raw = o.start
	v.clock = o.clock
	v.last = o.clock.Now()
}

// integrate must be called with mu held.
func (v *velocityIntegrator) integrate(speeds kinematics.ChassisSpeeds, heading spatialmath.Angle) {
	now := v.clock.Now()
	dt := utils.ZeroIfNotFinite(now.Sub(v.last).Seconds())
	v.last = now

	field := spatialmath.NewTranslation(speeds.VX, speeds.VY, 0, spatialmath.RobotRelative).ToFieldRelative(heading)
	delta := r2.Point{
		X: utils.ZeroIfNotFinite(field.X * dt),
		Y: utils.ZeroIfNotFinite(field.Y * dt),
	}
	v.raw = spatialmath.NewPoseFromPoint(v.raw.Point.Add(delta), heading)
}
