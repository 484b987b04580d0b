package control

// Proportional outputs (target - value) * coefficient.
type Proportional struct {
	bounds
	coefficient float64
}

// NewProportional returns a proportional controller.
func NewProportional(coefficient float64) *Proportional {
	return &Proportional{bounds: newBounds(), coefficient: coefficient}
}

// Coefficient returns the proportional gain.
func (p *Proportional) Coefficient() float64 {
	return p.coefficient
}

// Calculate implements Controller.
func (p *Proportional) Calculate(value float64) float64 {
	return p.clamp(p.errorOf(value) * p.coefficient)
}

// CalculateTo implements Controller.
func (p *Proportional) CalculateTo(value, target float64) float64 {
	p.SetTarget(target)
	return p.Calculate(value)
}

// Reset is a no-op, a proportional controller has no memory.
func (p *Proportional) Reset() {}
