package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Pose is an immutable planar position plus heading.
type Pose struct {
	Point   r2.Point
	Heading Angle
}

// ZeroPose is the origin facing heading 0.
var ZeroPose = Pose{}

// NewPose builds a pose at (x, y) facing heading.
func NewPose(x, y float64, heading Angle) Pose {
	return Pose{Point: r2.Point{X: x, Y: y}, Heading: heading}
}

// NewPoseFromPoint builds a pose at pt facing heading.
func NewPoseFromPoint(pt r2.Point, heading Angle) Pose {
	return Pose{Point: pt, Heading: heading}
}

// X returns the x coordinate.
func (p Pose) X() float64 {
	return p.Point.X
}

// Y returns the y coordinate.
func (p Pose) Y() float64 {
	return p.Point.Y
}

// Distance returns the euclidean distance between the two poses' points.
func (p Pose) Distance(other Pose) float64 {
	return p.Point.Sub(other.Point).Norm()
}

// AngleTo returns the heading that would face other from p. A coincident point yields p's heading.
func (p Pose) AngleTo(other Pose) Angle {
	return HeadingOf(other.Point.Sub(p.Point), p.Heading)
}

// HeadingOf returns the heading a vector points along, or fallback for the zero vector.
func HeadingOf(v r2.Point, fallback Angle) Angle {
	if v.X == 0 && v.Y == 0 {
		return fallback
	}
	return FixedRadians(math.Atan2(-v.X, v.Y))
}

// DirectionOf returns the unit vector pointing along heading.
func DirectionOf(heading Angle) r2.Point {
	return r2.Point{X: -heading.Sin(), Y: heading.Cos()}
}

// InDirection moves the pose distance units along heading, keeping the pose's own heading.
func (p Pose) InDirection(distance float64, heading Angle) Pose {
	return Pose{Point: p.Point.Add(DirectionOf(heading).Mul(distance)), Heading: p.Heading}
}

// WithHeading returns a copy of p facing heading.
func (p Pose) WithHeading(heading Angle) Pose {
	return Pose{Point: p.Point, Heading: heading}
}

// WithPoint returns a copy of p at pt.
func (p Pose) WithPoint(pt r2.Point) Pose {
	return Pose{Point: pt, Heading: p.Heading}
}

// Add sums the points and the headings; the heading is wrapped.
func (p Pose) Add(other Pose) Pose {
	return Pose{Point: p.Point.Add(other.Point), Heading: p.Heading.AddFixed(other.Heading)}
}

// Sub subtracts the points and the headings; the heading is wrapped.
func (p Pose) Sub(other Pose) Pose {
	return Pose{Point: p.Point.Sub(other.Point), Heading: p.Heading.SubFixed(other.Heading)}
}

// IsNear reports whether other is within tolerance distance and angleTolerance heading of p.
func (p Pose) IsNear(other Pose, tolerance float64, angleTolerance Angle) bool {
	return p.Distance(other) <= tolerance && p.Heading.IsCloseTo(other.Heading, angleTolerance)
}

// IsFinite reports whether every component of the pose is finite.
func (p Pose) IsFinite() bool {
	return isFinite(p.Point.X) && isFinite(p.Point.Y) && p.Heading.IsFinite()
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %s)", p.Point.X, p.Point.Y, p.Heading)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
