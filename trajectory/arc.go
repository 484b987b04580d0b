package trajectory

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/pathfollow/spatialmath"
)

// ArcConfig describes an Arc. Polar angles are measured counter-clockwise from the +X axis
// around Center.
type ArcConfig struct {
	Center r2.Point
	Radius float64
	// Start is the polar angle of the first point of the arc.
	Start spatialmath.Angle
	// Sweep is the signed angle to travel, positive counter-clockwise.
	Sweep spatialmath.Angle
	// Step is how far ahead of the robot's progress the marker is placed.
	Step      spatialmath.Angle
	Speed     float64
	Tolerance float64
	// FinalHeading, when set, is held for the whole arc and must be reached to finish. Otherwise
	// markers face along the arc and heading is not checked.
	FinalHeading   *spatialmath.Angle
	AngleTolerance spatialmath.Angle
}

// Arc follows a circular arc of fixed radius.
type Arc struct {
	cfg  ArcConfig
	sign float64
	span float64
	end  spatialmath.Pose

	lastPolar spatialmath.Angle
	swept     float64
	done      bool
}

// NewArc returns an arc trajectory.
func NewArc(cfg ArcConfig) (*Arc, error) {
	if cfg.Radius <= 0 || !isFinite(cfg.Radius) {
		return nil, errors.Errorf("arc radius must be positive, got %v", cfg.Radius)
	}
	if cfg.Step.Deg() <= 0 || !cfg.Step.IsFinite() {
		return nil, errors.Errorf("arc step must be positive, got %v", cfg.Step)
	}
	if err := checkTolerance(cfg.Tolerance, cfg.AngleTolerance); err != nil {
		return nil, err
	}
	if err := checkFinite("arc", cfg.Center.X, cfg.Center.Y, cfg.Start.Deg(), cfg.Sweep.Deg(), cfg.Speed); err != nil {
		return nil, err
	}
	a := &Arc{
		cfg:       cfg,
		sign:      math.Copysign(1, cfg.Sweep.Deg()),
		span:      math.Abs(cfg.Sweep.Deg()),
		lastPolar: cfg.Start,
	}
	a.end = a.pointAt(a.span)
	if cfg.FinalHeading != nil {
		a.end = a.end.WithHeading(cfg.FinalHeading.Fix())
	}
	return a, nil
}

// pointAt returns the marker pose after progress degrees of travel along the arc.
func (a *Arc) pointAt(progress float64) spatialmath.Pose {
	polar := a.cfg.Start.Add(spatialmath.NewAngleDegrees(a.sign * progress))
	pt := a.cfg.Center.Add(r2.Point{X: polar.Cos(), Y: polar.Sin()}.Mul(a.cfg.Radius))

	heading := polar
	if a.sign < 0 {
		heading = polar.Add(spatialmath.NewAngleDegrees(180))
	}
	if a.cfg.FinalHeading != nil {
		heading = *a.cfg.FinalHeading
	}
	return spatialmath.NewPoseFromPoint(pt, heading.Fix())
}

// Swept returns the degrees of arc travelled so far.
func (a *Arc) Swept() float64 {
	return a.swept
}

// Step implements Trajectory.
func (a *Arc) Step(current spatialmath.Pose) State {
	if a.done {
		return State{Marker: a.end, Done: true}
	}

	offset := current.Point.Sub(a.cfg.Center)
	if offset.Norm() > 0 {
		polar := spatialmath.FixedRadians(math.Atan2(offset.Y, offset.X))
		a.swept += a.sign * spatialmath.MinimumDelta(a.lastPolar, polar)
		a.lastPolar = polar
	}

	arrived := a.swept >= a.span || current.Distance(a.end) <= a.cfg.Tolerance
	headingOK := a.cfg.FinalHeading == nil || current.Heading.IsCloseTo(*a.cfg.FinalHeading, a.cfg.AngleTolerance)
	if arrived && headingOK {
		a.done = true
		return State{Marker: a.end, Done: true}
	}

	progress := math.Min(math.Max(a.swept, 0)+a.cfg.Step.Deg(), a.span)
	if arrived {
		progress = a.span
	}
	return State{Marker: a.pointAt(progress), Speed: a.cfg.Speed}
}

func (a *Arc) trajectory() {}
