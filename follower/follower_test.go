package follower

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/pathfollow/control"
	"go.viam.com/pathfollow/spatialmath"
	"go.viam.com/pathfollow/trajectory"
)

func deg(d float64) spatialmath.Angle {
	return spatialmath.NewAngleDegrees(d)
}

func linear(t *testing.T, target spatialmath.Pose, speed float64) trajectory.Trajectory {
	t.Helper()
	l, err := trajectory.NewLinear(target, speed, 0.05, deg(2))
	test.That(t, err, test.ShouldBeNil)
	return l
}

func TestNewFollower(t *testing.T) {
	_, err := NewFollower(nil, control.NewProportional(1))
	test.That(t, err, test.ShouldBeError, trajectory.ErrNilTrajectory)
	_, err = NewFollower(linear(t, spatialmath.ZeroPose, 1), nil)
	test.That(t, err, test.ShouldBeError, trajectory.ErrNilController)

	// a failed constructor leaves a typed nil behind
	failed, err := trajectory.NewLinear(spatialmath.ZeroPose, 1, -1, deg(2))
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewFollower(failed, control.NewProportional(1))
	test.That(t, err, test.ShouldBeError, trajectory.ErrNilTrajectory)
	var pid *control.PID
	_, err = NewFollower(linear(t, spatialmath.ZeroPose, 1), pid)
	test.That(t, err, test.ShouldBeError, trajectory.ErrNilController)
}

func TestFollowerDoneEmitsZero(t *testing.T) {
	f, err := NewFollower(linear(t, spatialmath.ZeroPose, 1), control.NewProportional(1))
	test.That(t, err, test.ShouldBeNil)

	var got []spatialmath.Translation
	done := f.Tick(spatialmath.ZeroPose, func(tr spatialmath.Translation) { got = append(got, tr) })
	test.That(t, done, test.ShouldBeTrue)
	test.That(t, len(got), test.ShouldEqual, 1)
	test.That(t, got[0], test.ShouldResemble, spatialmath.ZeroTranslation)
	test.That(t, got[0].IsZero(), test.ShouldBeTrue)
}

func TestFollowerTick(t *testing.T) {
	t.Run("straight ahead", func(t *testing.T) {
		f, err := NewFollower(linear(t, spatialmath.NewPose(0, 10, deg(0)), 0.5), control.NewProportional(0.01))
		test.That(t, err, test.ShouldBeNil)

		var out spatialmath.Translation
		test.That(t, f.Tick(spatialmath.ZeroPose, func(tr spatialmath.Translation) { out = tr }), test.ShouldBeFalse)
		test.That(t, out.Frame, test.ShouldEqual, spatialmath.RobotRelative)
		test.That(t, out.X, test.ShouldAlmostEqual, 0)
		test.That(t, out.Y, test.ShouldAlmostEqual, 0.5)
		test.That(t, out.Z, test.ShouldAlmostEqual, 0)
	})

	t.Run("target to the side of a turned robot", func(t *testing.T) {
		f, err := NewFollower(linear(t, spatialmath.NewPose(0, 10, deg(0)), 1), control.NewProportional(0.01))
		test.That(t, err, test.ShouldBeNil)

		var out spatialmath.Translation
		// facing -X, the target straight up the field is on the robot's right; turn back clockwise
		f.Tick(spatialmath.NewPose(0, 0, deg(90)), func(tr spatialmath.Translation) { out = tr })
		test.That(t, out.X, test.ShouldAlmostEqual, 1)
		test.That(t, out.Y, test.ShouldAlmostEqual, 0)
		test.That(t, out.Z, test.ShouldAlmostEqual, -0.9)
	})

	t.Run("turn in place", func(t *testing.T) {
		f, err := NewFollower(linear(t, spatialmath.NewPose(1, 1, deg(350)), 1), control.NewProportional(0.1))
		test.That(t, err, test.ShouldBeNil)

		var out spatialmath.Translation
		f.Tick(spatialmath.NewPose(1, 1, deg(10)), func(tr spatialmath.Translation) { out = tr })
		test.That(t, math.Hypot(out.X, out.Y), test.ShouldAlmostEqual, 0)
		test.That(t, out.Z, test.ShouldAlmostEqual, -2)
	})

	t.Run("nil consumer", func(t *testing.T) {
		fast, err := trajectory.NewFast(r2.Point{X: 3, Y: 0}, 1, 0.1)
		test.That(t, err, test.ShouldBeNil)
		f, err := NewFollower(fast, control.NewBangBang(1, -1))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, f.Tick(spatialmath.ZeroPose, nil), test.ShouldBeFalse)
		test.That(t, f.Trajectory(), test.ShouldEqual, fast)
	})
}
