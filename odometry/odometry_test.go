package odometry

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/pathfollow/kinematics"
	"go.viam.com/pathfollow/spatialmath"
)

func constant(v float64) func() float64 {
	return func() float64 { return v }
}

func fixedGyro(deg float64) func() spatialmath.Angle {
	return func() spatialmath.Angle { return spatialmath.NewAngleDegrees(deg) }
}

func poseShouldBe(t *testing.T, p spatialmath.Pose, x, y, deg float64) {
	t.Helper()
	test.That(t, p.X(), test.ShouldAlmostEqual, x)
	test.That(t, p.Y(), test.ShouldAlmostEqual, y)
	test.That(t, spatialmath.AngleDelta(p.Heading, spatialmath.NewAngleDegrees(deg)), test.ShouldAlmostEqual, 0)
}

func TestTankOdometry(t *testing.T) {
	t.Run("nil suppliers", func(t *testing.T) {
		_, err := NewTankOdometry(nil, constant(0), fixedGyro(0))
		test.That(t, err, test.ShouldBeError, ErrNilSupplier)
		_, err = NewTankOdometry(constant(0), constant(0), nil)
		test.That(t, err, test.ShouldBeError, ErrNilSupplier)
	})

	t.Run("forward", func(t *testing.T) {
		odom, err := NewTankOdometry(constant(1), constant(1), fixedGyro(0))
		test.That(t, err, test.ShouldBeNil)
		poseShouldBe(t, odom.Update(), 0, 1, 0)
	})

	t.Run("backward", func(t *testing.T) {
		odom, err := NewTankOdometry(constant(-1), constant(-1), fixedGyro(0))
		test.That(t, err, test.ShouldBeNil)
		poseShouldBe(t, odom.Update(), 0, -1, 0)
	})

	t.Run("deltas are taken from cumulative distances", func(t *testing.T) {
		var right, left float64
		heading := 0.0
		odom, err := NewTankOdometry(
			func() float64 { return right },
			func() float64 { return left },
			func() spatialmath.Angle { return spatialmath.NewAngleDegrees(heading) },
		)
		test.That(t, err, test.ShouldBeNil)

		right, left = 2, 2
		poseShouldBe(t, odom.Update(), 0, 2, 0)
		poseShouldBe(t, odom.Update(), 0, 2, 0)

		heading = 90
		right, left = 5, 3
		poseShouldBe(t, odom.Update(), -2, 2, 90)
		poseShouldBe(t, odom.RawPosition(), -2, 2, 90)
		poseShouldBe(t, odom.RawPosition(), -2, 2, 90)
	})

	t.Run("non finite readings", func(t *testing.T) {
		gyro := 30.0
		dist := 1.0
		odom, err := NewTankOdometry(
			func() float64 { return dist },
			func() float64 { return dist },
			func() spatialmath.Angle { return spatialmath.NewAngleDegrees(gyro) },
		)
		test.That(t, err, test.ShouldBeNil)
		odom.Update()
		before := odom.RawPosition()

		gyro = math.NaN()
		dist = math.Inf(1)
		after := odom.Update()
		test.That(t, after.IsFinite(), test.ShouldBeTrue)
		poseShouldBe(t, after, before.X(), before.Y(), 30)

		gyro = 30
		dist = 2
		poseShouldBe(t, odom.Update(), before.X()-0.5, before.Y()+math.Sqrt(3)/2, 30)
	})
}

func TestOffset(t *testing.T) {
	var dist float64
	odom, err := NewTankOdometry(
		func() float64 { return dist },
		func() float64 { return dist },
		fixedGyro(0),
		WithStartPose(spatialmath.NewPose(1, 1, spatialmath.ZeroAngle)),
	)
	test.That(t, err, test.ShouldBeNil)
	poseShouldBe(t, odom.Position(), 1, 1, 0)

	target := spatialmath.NewPose(10, -4, spatialmath.NewAngleDegrees(45))
	odom.OffsetSoPositionIs(target)
	poseShouldBe(t, odom.Position(), 10, -4, 45)
	poseShouldBe(t, odom.RawPosition(), 1, 1, 0)
	poseShouldBe(t, odom.Offset(), 9, -5, 45)

	dist = 3
	poseShouldBe(t, odom.Update(), 10, -1, 45)
	poseShouldBe(t, odom.RawPosition(), 1, 4, 0)

	odom.RemoveOffset()
	test.That(t, odom.Offset(), test.ShouldResemble, spatialmath.ZeroPose)
	poseShouldBe(t, odom.Position(), 1, 4, 0)
}

func TestMecanumOdometry(t *testing.T) {
	model, err := kinematics.NewMecanum(1, 1)
	test.That(t, err, test.ShouldBeNil)

	_, err = NewMecanumOdometry(model, nil, fixedGyro(0))
	test.That(t, err, test.ShouldBeError, ErrNilSupplier)

	mock := clock.NewMock()
	wheels := kinematics.MecanumWheelSpeeds{FrontLeft: 1, FrontRight: 1, RearLeft: 1, RearRight: 1}
	heading := 0.0
	odom, err := NewMecanumOdometry(
		model,
		func() kinematics.MecanumWheelSpeeds { return wheels },
		func() spatialmath.Angle { return spatialmath.NewAngleDegrees(heading) },
		WithClock(mock),
	)
	test.That(t, err, test.ShouldBeNil)

	mock.Add(time.Second)
	poseShouldBe(t, odom.Update(), 0, 1, 0)

	// no time has passed, nothing to integrate
	poseShouldBe(t, odom.Update(), 0, 1, 0)

	heading = 90
	mock.Add(2 * time.Second)
	poseShouldBe(t, odom.Update(), -2, 1, 90)

	wheels = model.ToWheelSpeeds(kinematics.ChassisSpeeds{VX: 1})
	mock.Add(500 * time.Millisecond)
	poseShouldBe(t, odom.Update(), -2, 1.5, 90)

	wheels = kinematics.MecanumWheelSpeeds{FrontLeft: math.NaN()}
	mock.Add(time.Second)
	poseShouldBe(t, odom.Update(), -2, 1.5, 90)
}

func TestSwerveOdometry(t *testing.T) {
	model, err := kinematics.NewSwerve(
		r2.Point{X: -1, Y: 1},
		r2.Point{X: 1, Y: 1},
		r2.Point{X: -1, Y: -1},
		r2.Point{X: 1, Y: -1},
	)
	test.That(t, err, test.ShouldBeNil)

	_, err = NewSwerveOdometry(nil, func() []kinematics.ModuleState { return nil }, fixedGyro(0))
	test.That(t, err, test.ShouldBeError, ErrNilSupplier)

	mock := clock.NewMock()
	states := model.ToModuleStates(kinematics.ChassisSpeeds{VX: 1, VY: 1})
	odom, err := NewSwerveOdometry(
		model,
		func() []kinematics.ModuleState { return states },
		fixedGyro(0),
		WithClock(mock),
	)
	test.That(t, err, test.ShouldBeNil)

	mock.Add(3 * time.Second)
	poseShouldBe(t, odom.Update(), 3, 3, 0)
}

func TestConfig(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
		err  string
	}{
		{"tank", Config{Type: DriveTank}, ""},
		{"tank with track", Config{Type: DriveTank, TrackWidthMM: 400}, ""},
		{"tank negative track", Config{Type: DriveTank, TrackWidthMM: -1}, "track_width_mm cannot be negative"},
		{"mecanum", Config{Type: DriveMecanum, WheelBaseMM: 300, TrackWidthMM: 400}, ""},
		{"mecanum missing", Config{Type: DriveMecanum}, `"wheel_base_mm" is required`},
		{"swerve", Config{Type: DriveSwerve, SwerveModules: []ModulePosition{{XMM: 1}, {XMM: -1}}}, ""},
		{"swerve missing", Config{Type: DriveSwerve}, "at least 2 swerve_modules"},
		{"no type", Config{}, `"type" is required`},
		{"bad type", Config{Type: "hover"}, `unsupported drive type "hover"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate("base")
			if tc.err == "" {
				test.That(t, err, test.ShouldBeNil)
				return
			}
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.err)
		})
	}

	odom, err := New(Config{Type: DriveTank}, Suppliers{
		RightDistance: constant(1),
		LeftDistance:  constant(1),
		Gyro:          fixedGyro(0),
	})
	test.That(t, err, test.ShouldBeNil)
	poseShouldBe(t, odom.Update(), 0, 1, 0)

	odom, err = New(Config{Type: DriveMecanum, WheelBaseMM: 300, TrackWidthMM: 400}, Suppliers{Gyro: fixedGyro(0)})
	test.That(t, err, test.ShouldBeError, ErrNilSupplier)
	test.That(t, odom, test.ShouldBeNil)

	_, err = New(Config{Type: DriveSwerve, SwerveModules: []ModulePosition{{XMM: 1}, {XMM: 1}}}, Suppliers{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestTankOdometryTurnsFromWheelsWithoutGyro(t *testing.T) {
	right, left := 0.0, 0.0
	suppliers := Suppliers{
		RightDistance: func() float64 { return right },
		LeftDistance:  func() float64 { return left },
		Gyro:          fixedGyro(math.NaN()),
	}
	odom, err := New(Config{Type: DriveTank, TrackWidthMM: 2}, suppliers)
	test.That(t, err, test.ShouldBeNil)

	// a quarter turn in place: (right - left) / track width = pi/2
	right, left = math.Pi/2, -math.Pi/2
	poseShouldBe(t, odom.Update(), 0, 0, 90)

	right, left = right+1, left+1
	poseShouldBe(t, odom.Update(), -1, 0, 90)

	// without a track width a bad gyro keeps the last heading
	right, left = 0, 0
	plain, err := New(Config{Type: DriveTank}, suppliers)
	test.That(t, err, test.ShouldBeNil)
	right, left = math.Pi/2, -math.Pi/2
	poseShouldBe(t, plain.Update(), 0, 0, 0)
}

func TestConfigSchema(t *testing.T) {
	raw, err := json.Marshal(ConfigSchema())
	test.That(t, err, test.ShouldBeNil)
	for _, field := range []string{"type", "wheel_base_mm", "track_width_mm", "swerve_modules", "x_mm"} {
		test.That(t, string(raw), test.ShouldContainSubstring, `"`+field+`"`)
	}
}
