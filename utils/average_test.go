package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestRollingAverage(t *testing.T) {
	ra := NewRollingAverage(3)
	test.That(t, ra.NumSamples(), test.ShouldEqual, 3)
	test.That(t, ra.Average(), test.ShouldEqual, 0)

	ra.Add(3)
	test.That(t, ra.Average(), test.ShouldEqual, 3)
	ra.Add(6)
	test.That(t, ra.Average(), test.ShouldEqual, 4.5)
	ra.Add(9)
	test.That(t, ra.Average(), test.ShouldEqual, 6)
	ra.Add(12)
	test.That(t, ra.Average(), test.ShouldEqual, 9)

	test.That(t, NewRollingAverage(0).NumSamples(), test.ShouldEqual, 1)
}
