// Package scheduler runs trajectories one at a time, each bounded by a minimum and maximum
// running time.
package scheduler

import (
	"math"
	"time"

	"github.com/google/uuid"

	"go.viam.com/pathfollow/trajectory"
)

// Untimed is the maximum time of a task with no upper bound.
const Untimed = time.Duration(math.MaxInt64)

// TaskOption configures a Task.
type TaskOption func(*Task)

// WithMinTime sets how long a task runs before its trajectory's completion is considered.
func WithMinTime(d time.Duration) TaskOption {
	return func(t *Task) {
		t.MinTime = d
	}
}

// WithMaxTime sets how long a task may run before it is dropped regardless of completion.
func WithMaxTime(d time.Duration) TaskOption {
	return func(t *Task) {
		t.MaxTime = d
	}
}

// Task binds a trajectory to a time window.
type Task struct {
	ID         uuid.UUID
	Trajectory trajectory.Trajectory
	MinTime    time.Duration
	MaxTime    time.Duration

	start   time.Time
	started bool
}

// NewTask returns an untimed task for traj, adjusted by opts.
func NewTask(traj trajectory.Trajectory, opts ...TaskOption) (*Task, error) {
	if trajectory.IsNil(traj) {
		return nil, trajectory.ErrNilTrajectory
	}
	t := &Task{
		ID:         uuid.New(),
		Trajectory: traj,
		MaxTime:    Untimed,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// HasStarted reports whether the scheduler has begun running the task.
func (t *Task) HasStarted() bool {
	return t.started
}

// StartTime returns when the task started, or the zero time if it has not.
func (t *Task) StartTime() time.Time {
	return t.start
}

func (t *Task) begin(now time.Time) {
	t.start = now
	t.started = true
}

// Elapsed returns how long the task has been running at now, or zero if it has not started.
func (t *Task) Elapsed(now time.Time) time.Duration {
	if !t.started {
		return 0
	}
	return now.Sub(t.start)
}

// IsMinimumTimeLimitValid reports whether the task has run for at least its minimum time.
func (t *Task) IsMinimumTimeLimitValid(now time.Time) bool {
	return t.started && t.Elapsed(now) >= t.MinTime
}

// IsMaximumTimeLimitExceeded reports whether the task has run for longer than its maximum time.
func (t *Task) IsMaximumTimeLimitExceeded(now time.Time) bool {
	return t.started && t.MaxTime != Untimed && t.Elapsed(now) > t.MaxTime
}
