// Package trajectory defines the goal-directed motion primitives a follower drives toward.
//
// A Trajectory is evaluated exactly once per control tick with Step, which returns the marker to
// steer toward, the speed to travel at and whether the goal has been reached. Variants with
// progress (sub-targets, segments, timers) advance at most once per Step. Instances are single
// use and single owner.
package trajectory

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"go.viam.com/pathfollow/spatialmath"
)

var (
	// ErrNegativeTolerance is returned when a tolerance is negative or not finite.
	ErrNegativeTolerance = errors.New("tolerance must be a finite, non-negative number")
	// ErrNilController is returned when a controlled trajectory is built without a controller.
	ErrNilController = errors.New("controller cannot be nil")
	// ErrNilTrajectory is returned when a composite trajectory is given a nil trajectory.
	ErrNilTrajectory = errors.New("trajectory cannot be nil")
	// ErrEmpty is returned when a trajectory needs at least one element and got none.
	ErrEmpty = errors.New("at least one element is required")
	// ErrNonFinite is returned when a goal pose or parameter is NaN or infinite.
	ErrNonFinite = errors.New("value must be finite")
)

// State is the outcome of one Step.
type State struct {
	// Marker is the pose to steer toward this tick.
	Marker spatialmath.Pose
	// Speed is the translational speed to travel at, nominally in [0, 1].
	Speed float64
	// Done reports that the goal has been reached. Marker and Speed are then stable and harmless.
	Done bool
}

// Trajectory is implemented by the variants in this package only.
type Trajectory interface {
	// Step evaluates the trajectory against the current pose.
	Step(current spatialmath.Pose) State

	trajectory()
}

// finished is the terminal state of variants with no geometric goal left.
func finished(current spatialmath.Pose) State {
	return State{Marker: current, Done: true}
}

// IsNil reports whether t is nil or a nil pointer to one of the variants, such as the value
// left behind by a failed constructor.
func IsNil(t Trajectory) bool {
	switch v := t.(type) {
	case nil:
		return true
	case *Linear:
		return v == nil
	case *Fast:
		return v == nil
	case *Spline:
		return v == nil
	case *MultiTarget:
		return v == nil
	case *Arc:
		return v == nil
	case *Controlled:
		return v == nil
	case *Task:
		return v == nil
	case *Timed:
		return v == nil
	case *MultiSegment:
		return v == nil
	}
	return false
}

// Cancel ends a trajectory early. Task trajectories, alone or at the head of a MultiSegment,
// run their finish callback if it has not run yet. Other variants are unaffected.
func Cancel(t Trajectory) {
	if IsNil(t) {
		return
	}
	switch v := t.(type) {
	case *Task:
		v.finish()
	case *MultiSegment:
		if len(v.segments) > 0 {
			Cancel(v.segments[0])
		}
	}
}

func checkTolerance(tolerance float64, angleTolerance spatialmath.Angle) error {
	if tolerance < 0 || !isFinite(tolerance) {
		return errors.Wrapf(ErrNegativeTolerance, "got tolerance %v", tolerance)
	}
	if angleTolerance.Deg() < 0 || !angleTolerance.IsFinite() {
		return errors.Wrapf(ErrNegativeTolerance, "got angle tolerance %v", angleTolerance)
	}
	return nil
}

func checkFinite(name string, values ...float64) error {
	for _, v := range values {
		if !isFinite(v) {
			return errors.Wrapf(ErrNonFinite, "%s", name)
		}
	}
	return nil
}

func checkPose(name string, p spatialmath.Pose) error {
	if !p.IsFinite() {
		return errors.Wrapf(ErrNonFinite, "%s %v", name, p)
	}
	return nil
}

func isFinite(v float64) bool {
	return v-v == 0
}

// Option configures the timed variants.
type Option func(*options)

type options struct {
	clock       clock.Clock
	minDuration time.Duration
	maxDuration time.Duration
	hasMax      bool
}

func newOptions(opts []Option) options {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock sets the clock elapsed time is measured with.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithMinDuration sets how long a task runs before it may complete.
func WithMinDuration(d time.Duration) Option {
	return func(o *options) {
		o.minDuration = d
	}
}

// WithMaxDuration sets how long a task may run before it completes regardless of its predicate.
func WithMaxDuration(d time.Duration) Option {
	return func(o *options) {
		o.maxDuration = d
		o.hasMax = true
	}
}
