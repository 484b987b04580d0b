package utils

import "gonum.org/v1/gonum/floats"

// RollingAverage is the mean of the last few samples added. It is not safe for concurrent use.
type RollingAverage struct {
	data  []float64
	pos   int
	count int
}

// NewRollingAverage returns an average over at most numSamples samples.
func NewRollingAverage(numSamples int) *RollingAverage {
	if numSamples < 1 {
		numSamples = 1
	}
	return &RollingAverage{data: make([]float64, numSamples)}
}

// NumSamples returns the window size.
func (ra *RollingAverage) NumSamples() int {
	return len(ra.data)
}

// Add records a sample, evicting the oldest once the window is full.
func (ra *RollingAverage) Add(x float64) {
	ra.data[ra.pos] = x
	ra.pos++
	if ra.pos >= len(ra.data) {
		ra.pos = 0
	}
	if ra.count < len(ra.data) {
		ra.count++
	}
}

// Average returns the mean of the samples in the window, or 0 before any sample is added.
func (ra *RollingAverage) Average() float64 {
	if ra.count == 0 {
		return 0
	}
	return floats.Sum(ra.data[:ra.count]) / float64(ra.count)
}
