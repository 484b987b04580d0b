package trajectory

import (
	"time"

	"github.com/benbjohnson/clock"

	"go.viam.com/pathfollow/spatialmath"
)

// TaskCallbacks are the hooks a Task runs. Every field is optional; a nil IsFinished means the
// task is finished as soon as its minimum duration allows.
type TaskCallbacks struct {
	// OnInitial runs once, on the first step.
	OnInitial func()
	// During runs on every step, including the first.
	During func()
	// OnFinish runs once, when the task completes or is cancelled.
	OnFinish func()
	// IsFinished reports whether the task's work is complete.
	IsFinished func() bool
}

// Task is a trajectory with no geometric goal. It runs callbacks and completes once its
// minimum duration has passed and either IsFinished reports true or its maximum duration has
// passed. The marker is the current pose and the speed is zero.
type Task struct {
	callbacks   TaskCallbacks
	clock       clock.Clock
	minDuration time.Duration
	maxDuration time.Duration
	hasMax      bool

	start    time.Time
	started  bool
	finished bool
}

// NewTask returns a task trajectory. Durations are measured from the first step.
func NewTask(callbacks TaskCallbacks, opts ...Option) *Task {
	o := newOptions(opts)
	return &Task{
		callbacks:   callbacks,
		clock:       o.clock,
		minDuration: o.minDuration,
		maxDuration: o.maxDuration,
		hasMax:      o.hasMax,
	}
}

// Step implements Trajectory.
func (t *Task) Step(current spatialmath.Pose) State {
	if t.finished {
		return finished(current)
	}
	if !t.started {
		t.start = t.clock.Now()
		t.started = true
		if t.callbacks.OnInitial != nil {
			t.callbacks.OnInitial()
		}
	}
	if t.callbacks.During != nil {
		t.callbacks.During()
	}

	elapsed := t.clock.Since(t.start)
	if elapsed < t.minDuration {
		return State{Marker: current}
	}
	done := t.callbacks.IsFinished == nil || t.callbacks.IsFinished()
	if !done && t.hasMax && elapsed >= t.maxDuration {
		done = true
	}
	if !done {
		return State{Marker: current}
	}
	t.finish()
	return finished(current)
}

func (t *Task) finish() {
	if t.finished {
		return
	}
	t.finished = true
	if t.callbacks.OnFinish != nil {
		t.callbacks.OnFinish()
	}
}

func (t *Task) trajectory() {}
