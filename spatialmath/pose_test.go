package spatialmath

import (
	"testing"

	"go.viam.com/test"
)

func TestPoseGeometry(t *testing.T) {
	origin := ZeroPose
	test.That(t, origin.Distance(NewPose(3, 4, ZeroAngle)), test.ShouldAlmostEqual, 5)

	// heading 0 faces +Y, 90 faces -X
	test.That(t, origin.AngleTo(NewPose(0, 5, ZeroAngle)).Deg(), test.ShouldAlmostEqual, 0)
	test.That(t, origin.AngleTo(NewPose(-5, 0, ZeroAngle)).Deg(), test.ShouldAlmostEqual, 90)
	test.That(t, origin.AngleTo(NewPose(5, 0, ZeroAngle)).Deg(), test.ShouldAlmostEqual, 270)
	test.That(t, NewPose(1, 1, NewAngleDegrees(33)).AngleTo(NewPose(1, 1, ZeroAngle)).Deg(), test.ShouldAlmostEqual, 33)

	moved := origin.InDirection(2, NewAngleDegrees(90))
	test.That(t, moved.X(), test.ShouldAlmostEqual, -2)
	test.That(t, moved.Y(), test.ShouldAlmostEqual, 0)
	test.That(t, moved.Heading.Deg(), test.ShouldEqual, 0)
}

func TestPoseArithmetic(t *testing.T) {
	a := NewPose(1, 2, NewAngleDegrees(350))
	b := NewPose(3, -1, NewAngleDegrees(20))
	sum := a.Add(b)
	test.That(t, sum.X(), test.ShouldAlmostEqual, 4)
	test.That(t, sum.Y(), test.ShouldAlmostEqual, 1)
	test.That(t, sum.Heading.Deg(), test.ShouldAlmostEqual, 10)

	diff := sum.Sub(b)
	test.That(t, diff.X(), test.ShouldAlmostEqual, 1)
	test.That(t, diff.Y(), test.ShouldAlmostEqual, 2)
	test.That(t, diff.Heading.Deg(), test.ShouldAlmostEqual, 350)
}

func TestPoseIsNear(t *testing.T) {
	target := NewPose(10, 10, ZeroAngle)
	tol := NewAngleDegrees(5)
	test.That(t, NewPose(9.95, 9.95, NewAngleDegrees(4.9)).IsNear(target, 0.1, tol), test.ShouldBeTrue)
	test.That(t, NewPose(9, 9, ZeroAngle).IsNear(target, 0.1, tol), test.ShouldBeFalse)
	test.That(t, NewPose(10, 10, NewAngleDegrees(10)).IsNear(target, 0.1, tol), test.ShouldBeFalse)
}
