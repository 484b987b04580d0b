package trajectory

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"

	"go.viam.com/pathfollow/spatialmath"
	"go.viam.com/pathfollow/utils"
)

// Spline follows a monotone cubic through a list of points and finishes facing a fixed exit
// heading. Points must be strictly increasing or strictly decreasing in x.
type Spline struct {
	curve interp.FritschButland
	// dir maps field x to the increasing parameter the curve is fit over.
	dir    float64
	first  float64
	last   float64
	final  spatialmath.Pose
	speed  float64
	step   float64
	tol    float64
	angTol spatialmath.Angle
}

// SplineConfig describes a Spline.
type SplineConfig struct {
	Points []r2.Point
	Speed  float64
	// Step is how far ahead of the robot, along the curve, the marker is placed.
	Step           float64
	Tolerance      float64
	AngleTolerance spatialmath.Angle
	ExitHeading    spatialmath.Angle
}

// NewSpline fits a spline through cfg.Points.
func NewSpline(cfg SplineConfig) (*Spline, error) {
	if len(cfg.Points) < 2 {
		return nil, errors.Wrap(ErrEmpty, "spline needs at least 2 points")
	}
	if err := checkTolerance(cfg.Tolerance, cfg.AngleTolerance); err != nil {
		return nil, err
	}
	if cfg.Step <= 0 || !isFinite(cfg.Step) {
		return nil, errors.Errorf("spline step must be positive, got %v", cfg.Step)
	}
	if err := checkFinite("speed", cfg.Speed, cfg.ExitHeading.Deg()); err != nil {
		return nil, err
	}

	dir := 1.0
	if cfg.Points[1].X < cfg.Points[0].X {
		dir = -1
	}
	xs := make([]float64, len(cfg.Points))
	ys := make([]float64, len(cfg.Points))
	for i, p := range cfg.Points {
		if err := checkFinite("spline point", p.X, p.Y); err != nil {
			return nil, err
		}
		xs[i] = dir * p.X
		ys[i] = p.Y
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, errors.Errorf("spline points must be strictly monotonic in x, point %d (%v) breaks it", i, p)
		}
	}

	s := &Spline{
		dir:    dir,
		first:  xs[0],
		last:   xs[len(xs)-1],
		final:  spatialmath.NewPoseFromPoint(cfg.Points[len(cfg.Points)-1], cfg.ExitHeading.Fix()),
		speed:  cfg.Speed,
		step:   cfg.Step,
		tol:    cfg.Tolerance,
		angTol: cfg.AngleTolerance,
	}
	if err := s.curve.Fit(xs, ys); err != nil {
		return nil, errors.Wrap(err, "cannot fit spline")
	}
	return s, nil
}

// At returns the point on the curve at field x, clamped to the ends of the curve.
func (s *Spline) At(x float64) r2.Point {
	u := utils.Clamp(s.dir*x, s.first, s.last)
	return r2.Point{X: s.dir * u, Y: s.curve.Predict(u)}
}

// Step implements Trajectory.
func (s *Spline) Step(current spatialmath.Pose) State {
	if current.IsNear(s.final, s.tol, s.angTol) {
		return State{Marker: s.final, Done: true}
	}

	u := utils.Clamp(s.dir*current.X(), s.first, s.last)
	slope := s.curve.PredictDerivative(u)
	next := u + s.step/math.Sqrt(1+slope*slope)
	if !isFinite(next) || next >= s.last {
		return State{Marker: s.final, Speed: s.speed}
	}
	return State{
		Marker: spatialmath.NewPoseFromPoint(r2.Point{X: s.dir * next, Y: s.curve.Predict(next)}, s.final.Heading),
		Speed:  s.speed,
	}
}

func (s *Spline) trajectory() {}
