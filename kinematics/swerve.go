package kinematics

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/pathfollow/spatialmath"
	"go.viam.com/pathfollow/utils"
)

// ModuleState is the speed and robot-relative direction of one swerve module. Angle uses the
// heading convention, zero points forward and positive is counter-clockwise.
type ModuleState struct {
	Speed float64
	Angle spatialmath.Angle
}

func (s ModuleState) velocity() r2.Point {
	return spatialmath.DirectionOf(s.Angle).Mul(s.Speed)
}

// Swerve models a drive of independently steered modules mounted at the given robot-relative
// positions.
type Swerve struct {
	Modules []r2.Point
}

// NewSwerve returns a swerve drive model. At least two distinct module positions are needed to
// recover rotation.
func NewSwerve(modules ...r2.Point) (*Swerve, error) {
	if len(modules) < 2 {
		return nil, errors.Errorf("swerve drive needs at least 2 modules, got %d", len(modules))
	}
	for i := 1; i < len(modules); i++ {
		if modules[i] != modules[0] {
			return &Swerve{Modules: append([]r2.Point(nil), modules...)}, nil
		}
	}
	return nil, errors.New("swerve module positions must not all coincide")
}

// ToChassisSpeeds converts module states into chassis motion using a least squares fit over
// every module. States beyond the number of modules are ignored and missing ones read as zero.
func (s *Swerve) ToChassisSpeeds(states []ModuleState) ChassisSpeeds {
	n := len(s.Modules)
	a := mat.NewDense(2*n, 3, nil)
	b := mat.NewVecDense(2*n, nil)
	for i, pos := range s.Modules {
		a.SetRow(2*i, []float64{1, 0, -pos.Y})
		a.SetRow(2*i+1, []float64{0, 1, pos.X})
		if i < len(states) {
			v := states[i].velocity()
			b.SetVec(2*i, utils.ZeroIfNotFinite(v.X))
			b.SetVec(2*i+1, utils.ZeroIfNotFinite(v.Y))
		}
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return ChassisSpeeds{}
	}
	return ChassisSpeeds{
		VX:    x.AtVec(0),
		VY:    x.AtVec(1),
		Omega: utils.RadToDeg(x.AtVec(2)),
	}.Sanitized()
}

// ToModuleStates converts chassis motion into one state per module. A module with no velocity
// keeps the forward direction.
func (s *Swerve) ToModuleStates(speeds ChassisSpeeds) []ModuleState {
	omega := utils.DegToRad(speeds.Omega)
	states := make([]ModuleState, 0, len(s.Modules))
	for _, pos := range s.Modules {
		v := r2.Point{X: speeds.VX - omega*pos.Y, Y: speeds.VY + omega*pos.X}
		states = append(states, ModuleState{
			Speed: math.Hypot(v.X, v.Y),
			Angle: spatialmath.HeadingOf(v, spatialmath.ZeroAngle),
		})
	}
	return states
}
