package control

// BangBang outputs high when the error is positive, low when it is negative and zero on target.
type BangBang struct {
	bounds
	high float64
	low  float64
}

// NewBangBang returns a bang-bang controller.
func NewBangBang(high, low float64) *BangBang {
	return &BangBang{bounds: newBounds(), high: high, low: low}
}

// Calculate implements Controller.
func (b *BangBang) Calculate(value float64) float64 {
	e := b.errorOf(value)
	switch {
	case e > 0:
		return b.clamp(b.high)
	case e < 0:
		return b.clamp(b.low)
	default:
		return 0
	}
}

// CalculateTo implements Controller.
func (b *BangBang) CalculateTo(value, target float64) float64 {
	b.SetTarget(target)
	return b.Calculate(value)
}

// Reset is a no-op.
func (b *BangBang) Reset() {}
