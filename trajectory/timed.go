package trajectory

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"go.viam.com/pathfollow/spatialmath"
)

// Timed drives open loop in a fixed field direction for a fixed duration, holding the current
// heading.
type Timed struct {
	direction spatialmath.Angle
	speed     float64
	duration  time.Duration
	clock     clock.Clock

	start   time.Time
	started bool
}

// NewTimed returns a trajectory that travels toward the field direction at speed for duration,
// measured from the first step. Only the clock option applies.
func NewTimed(direction spatialmath.Angle, speed float64, duration time.Duration, opts ...Option) (*Timed, error) {
	if duration < 0 {
		return nil, errors.Errorf("duration cannot be negative, got %v", duration)
	}
	if err := checkFinite("timed", direction.Deg(), speed); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &Timed{direction: direction.Fix(), speed: speed, duration: duration, clock: o.clock}, nil
}

// Step implements Trajectory.
func (t *Timed) Step(current spatialmath.Pose) State {
	if !t.started {
		t.start = t.clock.Now()
		t.started = true
	}
	if t.clock.Since(t.start) >= t.duration {
		return finished(current)
	}
	return State{Marker: current.InDirection(1, t.direction), Speed: t.speed}
}

func (t *Timed) trajectory() {}
