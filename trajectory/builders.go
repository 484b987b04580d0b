package trajectory

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/pathfollow/spatialmath"
)

// FromPath builds a MultiSegment of Linear trajectories through an ordered point list, as
// produced by a path planner. Every point is approached with heading.
func FromPath(
	points []r2.Point,
	speed, tolerance float64,
	angleTolerance, heading spatialmath.Angle,
) (*MultiSegment, error) {
	if len(points) == 0 {
		return nil, errors.Wrap(ErrEmpty, "path has no points")
	}
	segments := make([]Trajectory, 0, len(points))
	for i, p := range points {
		l, err := NewLinear(spatialmath.NewPoseFromPoint(p, heading), speed, tolerance, angleTolerance)
		if err != nil {
			return nil, errors.Wrapf(err, "path point %d", i)
		}
		segments = append(segments, l)
	}
	return NewMultiSegment(segments...)
}

// SplineFromPath fits a Spline through an ordered point list.
func SplineFromPath(
	points []r2.Point,
	speed, step, tolerance float64,
	angleTolerance, exitHeading spatialmath.Angle,
) (*Spline, error) {
	return NewSpline(SplineConfig{
		Points:         points,
		Speed:          speed,
		Step:           step,
		Tolerance:      tolerance,
		AngleTolerance: angleTolerance,
		ExitHeading:    exitHeading,
	})
}

// PathLength returns the length of the polyline through points.
func PathLength(points []r2.Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += floats.Distance(
			[]float64{points[i-1].X, points[i-1].Y},
			[]float64{points[i].X, points[i].Y},
			2,
		)
	}
	return total
}
