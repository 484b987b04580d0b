package odometry

import (
	"github.com/golang/geo/r2"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/pathfollow/kinematics"
	"go.viam.com/pathfollow/spatialmath"
	"go.viam.com/pathfollow/utils"
)

// DriveType names a drivetrain topology.
type DriveType string

// The supported drivetrains.
const (
	DriveTank    DriveType = "tank"
	DriveMecanum DriveType = "mecanum"
	DriveSwerve  DriveType = "swerve"
)

// ModulePosition is the robot-relative mounting point of a swerve module.
type ModulePosition struct {
	XMM float64 `json:"x_mm"`
	YMM float64 `json:"y_mm"`
}

// Config describes an odometry. Distances are in millimeters, so wheel speeds must be supplied in
// millimeters per second and poses are reported in millimeters.
type Config struct {
	Type          DriveType        `json:"type"`
	WheelBaseMM   float64          `json:"wheel_base_mm,omitempty"`
	TrackWidthMM  float64          `json:"track_width_mm,omitempty"`
	SwerveModules []ModulePosition `json:"swerve_modules,omitempty"`
}

// ConfigSchema returns the JSON schema of Config.
func ConfigSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	switch cfg.Type {
	case DriveTank:
		if cfg.TrackWidthMM < 0 {
			return utils.NewConfigValidationError(path, errors.New("track_width_mm cannot be negative"))
		}
		return nil
	case DriveMecanum:
		var err error
		if cfg.WheelBaseMM <= 0 {
			err = multierr.Append(err, utils.NewConfigValidationFieldRequiredError(path, "wheel_base_mm"))
		}
		if cfg.TrackWidthMM <= 0 {
			err = multierr.Append(err, utils.NewConfigValidationFieldRequiredError(path, "track_width_mm"))
		}
		return err
	case DriveSwerve:
		if len(cfg.SwerveModules) < 2 {
			return utils.NewConfigValidationError(path, errors.New("swerve drive needs at least 2 swerve_modules"))
		}
		return nil
	case "":
		return utils.NewConfigValidationFieldRequiredError(path, "type")
	default:
		return utils.NewConfigValidationError(path, errors.Errorf("unsupported drive type %q", cfg.Type))
	}
}

// Suppliers are the sensor accessors an odometry reads. Only those used by the configured
// drive type need to be set.
type Suppliers struct {
	RightDistance func() float64
	LeftDistance  func() float64
	MecanumWheels func() kinematics.MecanumWheelSpeeds
	SwerveModules func() []kinematics.ModuleState
	Gyro          func() spatialmath.Angle
}

// New validates cfg and builds the matching odometry and kinematics model.
func New(cfg Config, suppliers Suppliers, opts ...Option) (Odometry, error) {
	if err := cfg.Validate("odometry"); err != nil {
		return nil, err
	}
	var (
		odom Odometry
		err  error
	)
	switch cfg.Type {
	case DriveTank:
		if cfg.TrackWidthMM > 0 {
			model, modelErr := kinematics.NewTank(cfg.TrackWidthMM)
			if modelErr != nil {
				return nil, modelErr
			}
			opts = append(opts[:len(opts):len(opts)], WithTankModel(model))
		}
		odom, err = NewTankOdometry(suppliers.RightDistance, suppliers.LeftDistance, suppliers.Gyro, opts...)
	case DriveMecanum:
		model, modelErr := kinematics.NewMecanum(cfg.WheelBaseMM, cfg.TrackWidthMM)
		if modelErr != nil {
			return nil, modelErr
		}
		odom, err = NewMecanumOdometry(model, suppliers.MecanumWheels, suppliers.Gyro, opts...)
	case DriveSwerve:
		positions := make([]r2.Point, 0, len(cfg.SwerveModules))
		for _, m := range cfg.SwerveModules {
			positions = append(positions, r2.Point{X: m.XMM, Y: m.YMM})
		}
		model, modelErr := kinematics.NewSwerve(positions...)
		if modelErr != nil {
			return nil, errors.Wrap(modelErr, "invalid swerve modules")
		}
		odom, err = NewSwerveOdometry(model, suppliers.SwerveModules, suppliers.Gyro, opts...)
	default:
		return nil, errors.Errorf("unsupported drive type %q", cfg.Type)
	}
	if err != nil {
		return nil, err
	}
	return odom, nil
}
