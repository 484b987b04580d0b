package scheduler

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"go.viam.com/pathfollow/control"
	"go.viam.com/pathfollow/follower"
	"go.viam.com/pathfollow/logging"
	"go.viam.com/pathfollow/spatialmath"
	"go.viam.com/pathfollow/trajectory"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock sets the clock task times are measured with.
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// Scheduler runs queued tasks one at a time. It is not safe for concurrent use.
type Scheduler struct {
	logger logging.Logger
	source follower.PoseSource
	drive  follower.Drive
	turn   control.Controller
	clock  clock.Clock

	tasks    []*Task
	follower *follower.Follower
}

// NewScheduler returns an empty scheduler that steers every task with turn.
func NewScheduler(
	logger logging.Logger,
	source follower.PoseSource,
	drive follower.Drive,
	turn control.Controller,
	opts ...Option,
) (*Scheduler, error) {
	if logger == nil {
		return nil, follower.ErrNilLogger
	}
	if source == nil {
		return nil, errors.New("pose source cannot be nil")
	}
	if drive == nil {
		return nil, errors.New("drive cannot be nil")
	}
	if control.IsNil(turn) {
		return nil, trajectory.ErrNilController
	}
	s := &Scheduler{
		logger: logger,
		source: source,
		drive:  drive,
		turn:   turn,
		clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Add queues tasks in order. Nil tasks are ignored. A task without a trajectory, such as a
// struct literal not built with NewTask, is rejected and nothing from the call is queued.
func (s *Scheduler) Add(tasks ...*Task) error {
	for i, t := range tasks {
		if t != nil && trajectory.IsNil(t.Trajectory) {
			return errors.Wrapf(trajectory.ErrNilTrajectory, "task %d", i)
		}
	}
	for _, t := range tasks {
		if t == nil {
			continue
		}
		s.tasks = append(s.tasks, t)
		s.logger.Debugw("task queued", "id", t.ID, "min", t.MinTime, "queued", len(s.tasks))
	}
	return nil
}

// Len returns the number of queued tasks, including the running one.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Current returns the task at the head of the queue, or nil.
func (s *Scheduler) Current() *Task {
	if len(s.tasks) == 0 {
		return nil
	}
	return s.tasks[0]
}

// Tick advances the head task by one control period. Before its minimum time the task's
// trajectory is followed without regard to completion; afterwards the task is dropped once its
// trajectory is done or its maximum time is exceeded. Tick returns true only when the queue
// was empty.
func (s *Scheduler) Tick() bool {
	if len(s.tasks) == 0 {
		return true
	}
	head := s.tasks[0]
	now := s.clock.Now()

	if !head.HasStarted() {
		if err := s.start(head, now); err != nil {
			s.logger.Errorw("task cannot start", "id", head.ID, "error", err)
			s.dequeue("invalid task", now)
			return false
		}
		s.follow()
		return false
	}
	if !head.IsMinimumTimeLimitValid(now) {
		s.follow()
		return false
	}
	if head.IsMaximumTimeLimitExceeded(now) {
		trajectory.Cancel(head.Trajectory)
		s.dequeue("max time exceeded", now)
		return false
	}
	if s.follow() {
		s.dequeue("trajectory done", now)
	}
	return false
}

// Clear drops every queued task and stops the drive. A running task trajectory is cancelled.
func (s *Scheduler) Clear() {
	if head := s.Current(); head != nil && head.HasStarted() {
		trajectory.Cancel(head.Trajectory)
		s.drive.SetTranslation(spatialmath.ZeroTranslation)
	}
	s.tasks = nil
	s.follower = nil
}

func (s *Scheduler) start(t *Task, now time.Time) error {
	f, err := follower.NewFollower(t.Trajectory, s.turn)
	if err != nil {
		return err
	}
	s.follower = f
	s.turn.Reset()
	t.begin(now)
	s.logger.Debugw("task started", "id", t.ID)
	return nil
}

func (s *Scheduler) follow() bool {
	return s.follower.Tick(follower.Sample(s.source), s.drive.SetTranslation)
}

func (s *Scheduler) dequeue(reason string, now time.Time) {
	head := s.tasks[0]
	s.drive.SetTranslation(spatialmath.ZeroTranslation)
	s.follower = nil
	s.tasks[0] = nil
	s.tasks = s.tasks[1:]
	s.logger.Debugw("task dequeued", "id", head.ID, "reason", reason, "elapsed", head.Elapsed(now), "remaining", len(s.tasks))
}
