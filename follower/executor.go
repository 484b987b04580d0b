package follower

import (
	"github.com/pkg/errors"

	"go.viam.com/pathfollow/logging"
)

// ErrNilLogger is returned when a component that logs is built without a logger.
var ErrNilLogger = errors.New("logger cannot be nil")

// Executor runs a list of followers one at a time, in order. It is not safe for concurrent use.
type Executor struct {
	logger    logging.Logger
	source    PoseSource
	drive     Drive
	followers []*Follower
}

// NewExecutor returns an executor over followers that reads poses from source and sends
// translations to drive.
func NewExecutor(logger logging.Logger, source PoseSource, drive Drive, followers ...*Follower) (*Executor, error) {
	if err := checkBoundary(logger, source, drive); err != nil {
		return nil, err
	}
	for i, f := range followers {
		if f == nil {
			return nil, errors.Errorf("follower %d cannot be nil", i)
		}
	}
	return &Executor{
		logger:    logger,
		source:    source,
		drive:     drive,
		followers: append([]*Follower(nil), followers...),
	}, nil
}

// Tick ticks the head follower and drops it once it reports done. It returns true only when
// there was nothing left to run.
func (e *Executor) Tick() bool {
	if len(e.followers) == 0 {
		return true
	}
	if e.followers[0].Tick(Sample(e.source), e.drive.SetTranslation) {
		e.followers[0] = nil
		e.followers = e.followers[1:]
		e.logger.Debugw("follower finished", "remaining", len(e.followers))
	}
	return false
}

// Len returns the number of followers not yet finished.
func (e *Executor) Len() int {
	return len(e.followers)
}

// Clear drops every remaining follower.
func (e *Executor) Clear() {
	e.followers = nil
}

func checkBoundary(logger logging.Logger, source PoseSource, drive Drive) error {
	if logger == nil {
		return ErrNilLogger
	}
	if source == nil {
		return errors.New("pose source cannot be nil")
	}
	if drive == nil {
		return errors.New("drive cannot be nil")
	}
	return nil
}
