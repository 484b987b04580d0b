package trajectory

import (
	"math"

	"github.com/pkg/errors"

	"go.viam.com/pathfollow/spatialmath"
	"go.viam.com/pathfollow/utils"
)

// Precision selects how a MultiTarget sub-target is considered reached.
type Precision int

const (
	// PrecisionFast targets are reached once the robot has travelled, on every axis, at least as far as
	// the target lies from where the sub-goal began. Heading is ignored.
	PrecisionFast Precision = iota
	// PrecisionPrecise targets are reached once the robot is within tolerance and angle tolerance.
	PrecisionPrecise
)

func (p Precision) String() string {
	switch p {
	case PrecisionFast:
		return "fast"
	case PrecisionPrecise:
		return "precise"
	default:
		return "unknown"
	}
}

// Target is one sub-goal of a MultiTarget.
type Target struct {
	Pose           spatialmath.Pose
	Speed          float64
	Tolerance      float64
	AngleTolerance spatialmath.Angle
	Precision      Precision
}

func (t Target) reached(start, current spatialmath.Pose) bool {
	if t.Precision == PrecisionPrecise {
		return current.IsNear(t.Pose, t.Tolerance, t.AngleTolerance)
	}
	return axisReached(t.Pose.X()-start.X(), current.X()-start.X()) &&
		axisReached(t.Pose.Y()-start.Y(), current.Y()-start.Y())
}

func axisReached(required, moved float64) bool {
	if required == 0 {
		return true
	}
	return moved*utils.Sign(required) >= math.Abs(required)
}

// MultiTarget drives through an ordered list of sub-targets. Each sub-target is measured from
// the pose the robot had when it became current.
type MultiTarget struct {
	targets []Target
	index   int
	start   spatialmath.Pose
	started bool
}

// NewMultiTarget returns a trajectory through targets in order.
func NewMultiTarget(targets ...Target) (*MultiTarget, error) {
	if len(targets) == 0 {
		return nil, errors.Wrap(ErrEmpty, "multi target trajectory needs a target")
	}
	for i, t := range targets {
		if err := checkTolerance(t.Tolerance, t.AngleTolerance); err != nil {
			return nil, errors.Wrapf(err, "target %d", i)
		}
		if err := checkPose("target", t.Pose); err != nil {
			return nil, errors.Wrapf(err, "target %d", i)
		}
	}
	return &MultiTarget{targets: append([]Target(nil), targets...)}, nil
}

// Index returns the index of the current sub-target, or the number of targets once done.
func (m *MultiTarget) Index() int {
	return m.index
}

// Step implements Trajectory. At most one sub-target is consumed per call.
func (m *MultiTarget) Step(current spatialmath.Pose) State {
	if !m.started {
		m.start = current
		m.started = true
	}
	if m.index >= len(m.targets) {
		return finished(current)
	}
	if m.targets[m.index].reached(m.start, current) {
		m.index++
		m.start = current
		if m.index >= len(m.targets) {
			return finished(current)
		}
	}
	t := m.targets[m.index]
	return State{Marker: t.Pose, Speed: t.Speed}
}

func (m *MultiTarget) trajectory() {}
