// Package robotutils contains helpers for running the motion-control stack on a robot.
package robotutils

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	goutils "go.viam.com/utils"

	"go.viam.com/pathfollow/logging"
	"go.viam.com/pathfollow/utils"
)

// AsyncDriverConfig describes how often an AsyncDriver ticks.
type AsyncDriverConfig struct {
	FrequencyHz float64 `json:"frequency_hz"`
}

// Validate ensures all parts of the config are valid.
func (cfg *AsyncDriverConfig) Validate(path string) error {
	if cfg.FrequencyHz <= 0 || cfg.FrequencyHz > 200 {
		return utils.NewConfigValidationError(path,
			errors.Errorf("frequency_hz shouldn't be 0 or above 200Hz, got %v", cfg.FrequencyHz))
	}
	return nil
}

// tickDurationSamples is how many recent ticks AverageTickDuration covers.
const tickDurationSamples = 20

// AsyncDriverOption configures an AsyncDriver.
type AsyncDriverOption func(*AsyncDriver)

// WithDriverClock sets the clock the tick period is measured with.
func WithDriverClock(c clock.Clock) AsyncDriverOption {
	return func(d *AsyncDriver) {
		d.clock = c
	}
}

// WithKeepRunning sets a predicate checked before every tick; the driver stops once it
// returns false.
func WithKeepRunning(keepRunning func() bool) AsyncDriverOption {
	return func(d *AsyncDriver) {
		d.keepRunning = keepRunning
	}
}

// AsyncDriver calls a tick function at a fixed rate on a background goroutine until the tick
// reports there is nothing left to run, the keep-running predicate fails or Stop is called.
// It does no locking around tick; callers must not mutate what tick touches while it runs.
type AsyncDriver struct {
	logger      logging.Logger
	period      time.Duration
	tick        func() bool
	keepRunning func() bool
	clock       clock.Clock

	mu      sync.Mutex
	workers *goutils.StoppableWorkers
	running atomic.Bool
	ticks   atomic.Int64

	statsMu       sync.Mutex
	tickDurations *utils.RollingAverage
}

// NewAsyncDriver returns a stopped driver for tick, which is typically a Scheduler's or an
// ExecutorManager's Tick.
func NewAsyncDriver(logger logging.Logger, cfg AsyncDriverConfig, tick func() bool, opts ...AsyncDriverOption) (*AsyncDriver, error) {
	if err := cfg.Validate("async_driver"); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if tick == nil {
		return nil, errors.New("tick function cannot be nil")
	}
	d := &AsyncDriver{
		logger: logger,
		period: time.Duration(float64(time.Second) / cfg.FrequencyHz),
		tick:   tick,
		clock:  clock.New(),

		tickDurations: utils.NewRollingAverage(tickDurationSamples),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Start begins ticking in the background.
func (d *AsyncDriver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running.Load() {
		return errors.New("driver is already running")
	}
	if d.workers != nil {
		d.workers.Stop()
	}
	d.logger.Infof("running driver every %v", d.period)
	d.running.Store(true)
	ticker := d.clock.Ticker(d.period)
	d.workers = goutils.NewBackgroundStoppableWorkers(func(ctx context.Context) {
		defer d.running.Store(false)
		defer ticker.Stop()
		d.run(ctx, ticker)
	})
	return nil
}

func (d *AsyncDriver) run(ctx context.Context, ticker *clock.Ticker) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if d.keepRunning != nil && !d.keepRunning() {
			d.logger.Debug("keep running predicate failed, stopping driver")
			return
		}
		d.ticks.Inc()
		began := d.clock.Now()
		drained := d.tick()
		d.recordTick(d.clock.Since(began))
		if drained {
			d.logger.Debugw("nothing left to run, stopping driver", "ticks", d.ticks.Load())
			return
		}
	}
}

func (d *AsyncDriver) recordTick(took time.Duration) {
	if took > d.period {
		d.logger.Warnw("tick overran its period", "took", took, "period", d.period)
	}
	d.statsMu.Lock()
	defer d.statsMu.Unlock()
	d.tickDurations.Add(float64(took))
}

// AverageTickDuration returns the mean time tick took over the most recent ticks.
func (d *AsyncDriver) AverageTickDuration() time.Duration {
	d.statsMu.Lock()
	defer d.statsMu.Unlock()
	return time.Duration(d.tickDurations.Average())
}

// Stop stops ticking and waits for the background goroutine to exit.
func (d *AsyncDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.workers == nil {
		return
	}
	d.logger.Debug("stopping driver")
	d.workers.Stop()
	d.workers = nil
}

// IsRunning reports whether the background goroutine is ticking.
func (d *AsyncDriver) IsRunning() bool {
	return d.running.Load()
}

// Ticks returns the number of times tick has been called.
func (d *AsyncDriver) Ticks() int64 {
	return d.ticks.Load()
}
