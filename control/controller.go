// Package control contains the feedback controllers used for heading correction and
// controller-driven trajectories.
package control

import (
	"math"

	"go.viam.com/pathfollow/utils"
)

// Controller maps a measured value and a target to a correction output.
// Implementations are stateful and not safe for concurrent use.
type Controller interface {
	// SetTarget sets the value the controller drives toward.
	SetTarget(target float64)
	// Target returns the last target set.
	Target() float64
	// SetMin sets the lower bound of the output.
	SetMin(lower float64)
	// SetMax sets the upper bound of the output.
	SetMax(upper float64)
	// Min returns the lower output bound, -Inf by default.
	Min() float64
	// Max returns the upper output bound, +Inf by default.
	Max() float64
	// Calculate computes the output for value against the current target.
	Calculate(value float64) float64
	// CalculateTo sets target and then calculates.
	CalculateTo(value, target float64) float64
	// Reset clears any accumulated state.
	Reset()
}

// IsNil reports whether c is nil or a nil pointer to one of the controllers in this package.
func IsNil(c Controller) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Proportional:
		return v == nil
	case *PID:
		return v == nil
	case *BangBang:
		return v == nil
	}
	return false
}

// bounds is the target/min/max bookkeeping every controller shares.
type bounds struct {
	target float64
	min    float64
	max    float64
}

func newBounds() bounds {
	return bounds{min: math.Inf(-1), max: math.Inf(1)}
}

func (b *bounds) SetTarget(target float64) {
	b.target = target
}

func (b *bounds) Target() float64 {
	return b.target
}

func (b *bounds) SetMin(lower float64) {
	b.min = lower
}

func (b *bounds) SetMax(upper float64) {
	b.max = upper
}

func (b *bounds) Min() float64 {
	return b.min
}

func (b *bounds) Max() float64 {
	return b.max
}

func (b *bounds) clamp(output float64) float64 {
	return utils.Clamp(output, b.min, b.max)
}

func (b *bounds) errorOf(value float64) float64 {
	return b.target - value
}
