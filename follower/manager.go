package follower

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"go.viam.com/pathfollow/logging"
)

// GroupTiming records how long a finished group ran.
type GroupTiming struct {
	ID        uuid.UUID
	Followers int
	Elapsed   time.Duration
}

type group struct {
	id       uuid.UUID
	size     int
	executor *Executor
	// start is stamped when the group becomes head of the queue.
	start time.Time
}

// ManagerOption configures an ExecutorManager.
type ManagerOption func(*ExecutorManager)

// WithClock sets the clock group timing is measured with.
func WithClock(c clock.Clock) ManagerOption {
	return func(m *ExecutorManager) {
		m.clock = c
	}
}

// ExecutorManager runs groups of followers one group at a time, in the order they were added.
// It is not safe for concurrent use.
type ExecutorManager struct {
	logger logging.Logger
	source PoseSource
	drive  Drive
	clock  clock.Clock

	groups    []*group
	completed []GroupTiming
}

// NewExecutorManager returns an empty manager.
func NewExecutorManager(logger logging.Logger, source PoseSource, drive Drive, opts ...ManagerOption) (*ExecutorManager, error) {
	if err := checkBoundary(logger, source, drive); err != nil {
		return nil, err
	}
	m := &ExecutorManager{
		logger: logger,
		source: source,
		drive:  drive,
		clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// AddGroup queues the followers as one group and returns its ID.
func (m *ExecutorManager) AddGroup(followers ...*Follower) (uuid.UUID, error) {
	exec, err := NewExecutor(m.logger, m.source, m.drive, followers...)
	if err != nil {
		return uuid.Nil, err
	}
	g := &group{id: uuid.New(), size: len(followers), executor: exec}
	m.groups = append(m.groups, g)
	m.logger.Debugw("group queued", "id", g.id, "followers", g.size, "queued", len(m.groups))
	if len(m.groups) == 1 {
		m.promote()
	}
	return g.id, nil
}

// promote starts the timing of the new head group.
func (m *ExecutorManager) promote() {
	head := m.groups[0]
	head.start = m.clock.Now()
	m.logger.Debugw("group started", "id", head.id, "followers", head.size)
}

// Tick ticks the head group and drops it once its executor reports done. It returns true only
// when no group was queued.
func (m *ExecutorManager) Tick() bool {
	if len(m.groups) == 0 {
		return true
	}
	head := m.groups[0]
	if head.executor.Tick() {
		timing := GroupTiming{ID: head.id, Followers: head.size, Elapsed: m.clock.Since(head.start)}
		m.completed = append(m.completed, timing)
		m.groups[0] = nil
		m.groups = m.groups[1:]
		m.logger.Debugw("group finished", "id", timing.ID, "elapsed", timing.Elapsed, "remaining", len(m.groups))
		if len(m.groups) > 0 {
			m.promote()
		}
	}
	return false
}

// IsActive reports whether any group is queued.
func (m *ExecutorManager) IsActive() bool {
	return len(m.groups) > 0
}

// IsInactive reports whether no group is queued.
func (m *ExecutorManager) IsInactive() bool {
	return !m.IsActive()
}

// Len returns the number of queued groups, including the running one.
func (m *ExecutorManager) Len() int {
	return len(m.groups)
}

// CurrentGroupElapsed returns how long the head group has been at the head of the queue, or zero
// when nothing is queued.
func (m *ExecutorManager) CurrentGroupElapsed() time.Duration {
	if len(m.groups) == 0 {
		return 0
	}
	return m.clock.Since(m.groups[0].start)
}

// TotalElapsed returns the running time of every finished group plus the current one.
func (m *ExecutorManager) TotalElapsed() time.Duration {
	total := m.CurrentGroupElapsed()
	for _, c := range m.completed {
		total += c.Elapsed
	}
	return total
}

// CompletedGroups returns the timing of every finished group, oldest first.
func (m *ExecutorManager) CompletedGroups() []GroupTiming {
	return append([]GroupTiming(nil), m.completed...)
}

// Clear drops every queued group, including the running one. Completed timings are kept.
func (m *ExecutorManager) Clear() {
	if len(m.groups) > 0 {
		m.logger.Debugw("groups cleared", "dropped", len(m.groups))
	}
	m.groups = nil
}
