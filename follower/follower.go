package follower

import (
	"github.com/golang/geo/r2"

	"go.viam.com/pathfollow/control"
	"go.viam.com/pathfollow/spatialmath"
	"go.viam.com/pathfollow/trajectory"
)

// Follower drives one trajectory, steering its heading with a turn controller.
type Follower struct {
	trajectory trajectory.Trajectory
	turn       control.Controller
}

// NewFollower binds a trajectory to a turn controller. The controller is fed the negated
// heading error against a target of zero, so a proportional controller turns toward the marker
// heading at coefficient degrees of error per unit of turn.
func NewFollower(traj trajectory.Trajectory, turn control.Controller) (*Follower, error) {
	if trajectory.IsNil(traj) {
		return nil, trajectory.ErrNilTrajectory
	}
	if control.IsNil(turn) {
		return nil, trajectory.ErrNilController
	}
	return &Follower{trajectory: traj, turn: turn}, nil
}

// Trajectory returns the bound trajectory.
func (f *Follower) Trajectory() trajectory.Trajectory {
	return f.trajectory
}

// Tick evaluates the trajectory once and passes the resulting robot-relative translation to
// consume. It returns true, after emitting the zero translation, once the trajectory is done.
func (f *Follower) Tick(current spatialmath.Pose, consume func(spatialmath.Translation)) bool {
	state := f.trajectory.Step(current)
	if state.Done {
		emit(consume, spatialmath.ZeroTranslation)
		return true
	}

	delta := spatialmath.MinimumDelta(current.Heading, state.Marker.Heading)
	turn := f.turn.CalculateTo(-delta, 0)

	var travel r2.Point
	if current.Distance(state.Marker) > 0 {
		travel = spatialmath.DirectionOf(current.AngleTo(state.Marker)).Mul(state.Speed)
	}
	field := spatialmath.NewTranslation(travel.X, travel.Y, turn, spatialmath.FieldRelative)
	emit(consume, field.ToRobotRelative(current.Heading))
	return false
}

func emit(consume func(spatialmath.Translation), t spatialmath.Translation) {
	if consume != nil {
		consume(t)
	}
}
