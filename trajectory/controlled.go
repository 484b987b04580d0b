package trajectory

import (
	"go.viam.com/pathfollow/control"
	"go.viam.com/pathfollow/spatialmath"
)

// Controlled drives to a goal pose with speed produced by an injected controller fed the
// remaining distance.
type Controlled struct {
	target         spatialmath.Pose
	controller     control.Controller
	tolerance      float64
	angleTolerance spatialmath.Angle
	started        bool
}

// NewControlled returns a trajectory to target whose speed is controller's output for the
// negated remaining distance against a target of zero, so a proportional controller yields
// coefficient * distance. Bound the speed with the controller's min and max.
func NewControlled(
	target spatialmath.Pose,
	controller control.Controller,
	tolerance float64,
	angleTolerance spatialmath.Angle,
) (*Controlled, error) {
	if control.IsNil(controller) {
		return nil, ErrNilController
	}
	if err := checkTolerance(tolerance, angleTolerance); err != nil {
		return nil, err
	}
	if err := checkPose("target", target); err != nil {
		return nil, err
	}
	return &Controlled{target: target, controller: controller, tolerance: tolerance, angleTolerance: angleTolerance}, nil
}

// Step implements Trajectory. The controller is reset on the first step.
func (c *Controlled) Step(current spatialmath.Pose) State {
	if !c.started {
		c.controller.Reset()
		c.started = true
	}
	if current.IsNear(c.target, c.tolerance, c.angleTolerance) {
		return State{Marker: c.target, Done: true}
	}
	speed := c.controller.CalculateTo(-current.Distance(c.target), 0)
	return State{Marker: c.target, Speed: speed}
}

func (c *Controlled) trajectory() {}
