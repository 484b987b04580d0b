package trajectory

import (
	"github.com/pkg/errors"

	"go.viam.com/pathfollow/spatialmath"
)

// MultiSegment runs trajectories one after another.
type MultiSegment struct {
	segments []Trajectory
}

// NewMultiSegment returns a trajectory through segments in order.
func NewMultiSegment(segments ...Trajectory) (*MultiSegment, error) {
	if len(segments) == 0 {
		return nil, errors.Wrap(ErrEmpty, "multi segment trajectory needs a segment")
	}
	for i, s := range segments {
		if IsNil(s) {
			return nil, errors.Wrapf(ErrNilTrajectory, "segment %d", i)
		}
	}
	return &MultiSegment{segments: append([]Trajectory(nil), segments...)}, nil
}

// Remaining returns the number of segments not yet completed.
func (m *MultiSegment) Remaining() int {
	return len(m.segments)
}

// Step implements Trajectory. A completed head is dropped and the next segment evaluated once,
// so at most one segment is consumed per call.
func (m *MultiSegment) Step(current spatialmath.Pose) State {
	if len(m.segments) == 0 {
		return finished(current)
	}
	state := m.segments[0].Step(current)
	if !state.Done {
		return state
	}
	m.segments[0] = nil
	m.segments = m.segments[1:]
	if len(m.segments) == 0 {
		return finished(current)
	}
	state = m.segments[0].Step(current)
	state.Done = false
	return state
}

func (m *MultiSegment) trajectory() {}
