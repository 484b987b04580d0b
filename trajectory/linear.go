package trajectory

import (
	"go.viam.com/pathfollow/spatialmath"
)

// Linear drives straight to a single goal pose.
type Linear struct {
	target         spatialmath.Pose
	speed          float64
	tolerance      float64
	angleTolerance spatialmath.Angle
}

// NewLinear returns a trajectory to target, done once within tolerance and angleTolerance.
func NewLinear(target spatialmath.Pose, speed, tolerance float64, angleTolerance spatialmath.Angle) (*Linear, error) {
	if err := checkTolerance(tolerance, angleTolerance); err != nil {
		return nil, err
	}
	if err := checkPose("target", target); err != nil {
		return nil, err
	}
	if err := checkFinite("speed", speed); err != nil {
		return nil, err
	}
	return &Linear{target: target, speed: speed, tolerance: tolerance, angleTolerance: angleTolerance}, nil
}

// Target returns the goal pose.
func (l *Linear) Target() spatialmath.Pose {
	return l.target
}

// Step implements Trajectory. The marker is always the target.
func (l *Linear) Step(current spatialmath.Pose) State {
	if current.IsNear(l.target, l.tolerance, l.angleTolerance) {
		return State{Marker: l.target, Done: true}
	}
	return State{Marker: l.target, Speed: l.speed}
}

func (l *Linear) trajectory() {}
