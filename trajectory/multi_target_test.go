package trajectory

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/pathfollow/spatialmath"
)

func TestMultiTargetFast(t *testing.T) {
	a := spatialmath.NewPose(0, 10, deg(0))
	b := spatialmath.NewPose(10, 10, deg(0))
	c := spatialmath.NewPose(10, 0, deg(0))
	fast := func(p spatialmath.Pose, speed float64) Target {
		return Target{Pose: p, Speed: speed, Tolerance: 0.5, AngleTolerance: deg(5), Precision: PrecisionFast}
	}
	m, err := NewMultiTarget(fast(a, 1), fast(b, 0.5), fast(c, 0.25))
	test.That(t, err, test.ShouldBeNil)

	// start pose is taken from the first step
	s := m.Step(spatialmath.ZeroPose)
	test.That(t, s.Marker, test.ShouldResemble, a)
	test.That(t, s.Speed, test.ShouldEqual, 1)

	s = m.Step(spatialmath.NewPose(3, 9.9, deg(0)))
	test.That(t, s.Marker, test.ShouldResemble, a)
	test.That(t, m.Index(), test.ShouldEqual, 0)

	// overshooting still counts, lateral drift is not measured on a zero axis
	s = m.Step(spatialmath.NewPose(1, 10.2, deg(40)))
	test.That(t, s.Marker, test.ShouldResemble, b)
	test.That(t, s.Speed, test.ShouldEqual, 0.5)
	test.That(t, s.Done, test.ShouldBeFalse)

	// b is measured from where a was reached: 9 in x, -0.2 in y
	s = m.Step(spatialmath.NewPose(9.5, 10, deg(0)))
	test.That(t, s.Marker, test.ShouldResemble, b)
	s = m.Step(spatialmath.NewPose(10, 10.1, deg(0)))
	test.That(t, s.Marker, test.ShouldResemble, b)
	s = m.Step(spatialmath.NewPose(10, 10, deg(0)))
	test.That(t, s.Marker, test.ShouldResemble, c)
	test.That(t, m.Index(), test.ShouldEqual, 2)

	s = m.Step(spatialmath.NewPose(10, 0.5, deg(0)))
	test.That(t, s.Done, test.ShouldBeFalse)
	test.That(t, s.Marker, test.ShouldResemble, c)

	s = m.Step(spatialmath.NewPose(10, -0.1, deg(0)))
	test.That(t, s.Done, test.ShouldBeTrue)
	test.That(t, s.Speed, test.ShouldEqual, 0)

	// finished trajectories stay finished
	far := spatialmath.NewPose(-50, 50, deg(0))
	s = m.Step(far)
	test.That(t, s.Done, test.ShouldBeTrue)
	test.That(t, s.Marker, test.ShouldResemble, far)
}

func TestMultiTargetAdvancesOncePerStep(t *testing.T) {
	a := Target{Pose: spatialmath.NewPose(0, 1, deg(0)), Speed: 1}
	b := Target{Pose: spatialmath.NewPose(0, 2, deg(0)), Speed: 1}
	m, err := NewMultiTarget(a, b)
	test.That(t, err, test.ShouldBeNil)

	m.Step(spatialmath.ZeroPose)
	// one step past both targets only consumes the first
	s := m.Step(spatialmath.NewPose(0, 5, deg(0)))
	test.That(t, s.Done, test.ShouldBeFalse)
	test.That(t, s.Marker, test.ShouldResemble, b.Pose)
	test.That(t, m.Index(), test.ShouldEqual, 1)

	s = m.Step(spatialmath.NewPose(0, 5, deg(0)))
	test.That(t, s.Done, test.ShouldBeFalse)
	// b is measured from where a was consumed, so it needs 3 units back toward y=2
	s = m.Step(spatialmath.NewPose(0, 1.5, deg(0)))
	test.That(t, s.Done, test.ShouldBeTrue)
}

func TestMultiTargetPrecise(t *testing.T) {
	target := Target{
		Pose:           spatialmath.NewPose(5, 5, deg(90)),
		Speed:          1,
		Tolerance:      0.1,
		AngleTolerance: deg(3),
		Precision:      PrecisionPrecise,
	}
	m, err := NewMultiTarget(target)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, m.Step(spatialmath.NewPose(6, 6, deg(90))).Done, test.ShouldBeFalse)
	test.That(t, m.Step(spatialmath.NewPose(5, 5, deg(80))).Done, test.ShouldBeFalse)
	test.That(t, m.Step(spatialmath.NewPose(5.05, 5, deg(88))).Done, test.ShouldBeTrue)
}

func TestPrecisionString(t *testing.T) {
	test.That(t, PrecisionFast.String(), test.ShouldEqual, "fast")
	test.That(t, PrecisionPrecise.String(), test.ShouldEqual, "precise")
}
