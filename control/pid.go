package control

import (
	"math"

	"go.viam.com/pathfollow/utils"
)

// PID is a discrete per-call PID controller. The integral is the running sum of errors, clamped
// to ±integralLimit, and the derivative is the change in error since the previous call.
type PID struct {
	bounds
	kp            float64
	ki            float64
	kd            float64
	integralLimit float64

	sum       float64
	lastError float64
	hasLast   bool
}

// NewPID returns a PID controller. A non-positive integralLimit leaves the integral unbounded.
func NewPID(kp, ki, kd, integralLimit float64) *PID {
	if integralLimit <= 0 {
		integralLimit = math.Inf(1)
	}
	return &PID{bounds: newBounds(), kp: kp, ki: ki, kd: kd, integralLimit: integralLimit}
}

// Gains returns kp, ki and kd.
func (p *PID) Gains() (float64, float64, float64) {
	return p.kp, p.ki, p.kd
}

// Integral returns the accumulated, clamped error sum.
func (p *PID) Integral() float64 {
	return p.sum
}

// Calculate implements Controller.
func (p *PID) Calculate(value float64) float64 {
	e := p.errorOf(value)
	p.sum = utils.Clamp(p.sum+e, -p.integralLimit, p.integralLimit)

	var delta float64
	if p.hasLast {
		delta = e - p.lastError
	}
	p.lastError = e
	p.hasLast = true

	return p.clamp(p.kp*e + p.ki*p.sum + p.kd*delta)
}

// CalculateTo implements Controller.
func (p *PID) CalculateTo(value, target float64) float64 {
	p.SetTarget(target)
	return p.Calculate(value)
}

// Reset clears the accumulated sum and the last error.
func (p *PID) Reset() {
	p.sum = 0
	p.lastError = 0
	p.hasLast = false
}
