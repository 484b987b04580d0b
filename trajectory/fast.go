package trajectory

import (
	"github.com/golang/geo/r2"

	"go.viam.com/pathfollow/spatialmath"
)

// Fast drives to a point as directly as possible, holding the heading it started with and
// ignoring heading for completion.
type Fast struct {
	target    r2.Point
	speed     float64
	tolerance float64

	heading spatialmath.Angle
	started bool
}

// NewFast returns a trajectory to target that takes its heading from the first pose it sees.
func NewFast(target r2.Point, speed, tolerance float64) (*Fast, error) {
	if err := checkTolerance(tolerance, spatialmath.ZeroAngle); err != nil {
		return nil, err
	}
	if err := checkFinite("target", target.X, target.Y, speed); err != nil {
		return nil, err
	}
	return &Fast{target: target, speed: speed, tolerance: tolerance}, nil
}

// NewFastFrom returns a trajectory to target that holds the heading of start.
func NewFastFrom(start spatialmath.Pose, target r2.Point, speed, tolerance float64) (*Fast, error) {
	f, err := NewFast(target, speed, tolerance)
	if err != nil {
		return nil, err
	}
	f.heading = start.Heading
	f.started = true
	return f, nil
}

// Step implements Trajectory.
func (f *Fast) Step(current spatialmath.Pose) State {
	if !f.started {
		f.heading = current.Heading
		f.started = true
	}
	marker := spatialmath.NewPoseFromPoint(f.target, f.heading)
	if current.Point.Sub(f.target).Norm() <= f.tolerance {
		return State{Marker: marker, Done: true}
	}
	return State{Marker: marker, Speed: f.speed}
}

func (f *Fast) trajectory() {}
