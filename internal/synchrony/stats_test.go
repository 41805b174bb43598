package synchrony

import (
	"math"
	"testing"
)

func TestComputeConstantSeries(t *testing.T) {
	// Identical rows: no temporal variance, fixed cross-community spread.
	series := [][]float64{
		{0.2, 0.8},
		{0.2, 0.8},
		{0.2, 0.8},
	}
	s := Compute(series, 0)

	if s.Lambda > 1e-12 {
		t.Errorf("lambda = %g, want 0", s.Lambda)
	}
	// Population variance of {0.2, 0.8} is 0.09.
	if math.Abs(s.Chi-0.09) > 1e-12 {
		t.Errorf("chi = %f, want 0.09", s.Chi)
	}
	if math.Abs(s.Phi-0.5) > 1e-12 {
		t.Errorf("phi = %f, want 0.5", s.Phi)
	}
}

func TestComputeUniformSeries(t *testing.T) {
	// One community flipping between two levels: chi is zero (single
	// community has no spread), lambda is the temporal variance.
	series := [][]float64{{0.0}, {1.0}, {0.0}, {1.0}}
	s := Compute(series, 0)

	if math.Abs(s.Lambda-0.25) > 1e-12 {
		t.Errorf("lambda = %f, want 0.25", s.Lambda)
	}
	if s.Chi > 1e-12 {
		t.Errorf("chi = %g, want 0", s.Chi)
	}
	if math.Abs(s.Phi-0.5) > 1e-12 {
		t.Errorf("phi = %f, want 0.5", s.Phi)
	}
}

func TestComputeTransientDiscard(t *testing.T) {
	// Wild transient rows followed by a constant tail; discarding the
	// transient must leave zero variance.
	series := [][]float64{
		{0.0, 1.0},
		{1.0, 0.0},
		{0.5, 0.5},
		{0.5, 0.5},
		{0.5, 0.5},
	}
	s := Compute(series, 2)

	if s.Lambda > 1e-12 || s.Chi > 1e-12 {
		t.Errorf("variances after discard: lambda=%g chi=%g", s.Lambda, s.Chi)
	}
	if math.Abs(s.Phi-0.5) > 1e-12 {
		t.Errorf("phi = %f", s.Phi)
	}
}

func TestComputeDegenerate(t *testing.T) {
	if s := Compute(nil, 0); s != (Stats{}) {
		t.Errorf("empty series: %+v", s)
	}
	// Discard beyond length must not panic and yields zero stats.
	if s := Compute([][]float64{{0.5}}, 10); s != (Stats{}) {
		t.Errorf("over-discarded series: %+v", s)
	}
}
