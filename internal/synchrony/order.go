package synchrony

import "math"

// OrderParameters computes the Kuramoto order parameter of each community:
// the magnitude of the mean unit-phase vector over its n0 oscillators.
// Values lie in [0,1]; 1 means the community is phase-locked, 0 means the
// unit phases cancel exactly.
func OrderParameters(theta []float64, n0, n1 int) []float64 {
	r := make([]float64, n1)
	for c := 0; c < n1; c++ {
		var sumSin, sumCos float64
		for i := c * n0; i < (c+1)*n0; i++ {
			s, co := math.Sincos(theta[i])
			sumSin += s
			sumCos += co
		}
		r[c] = math.Hypot(sumCos, sumSin) / float64(n0)
	}
	return r
}

// GlobalOrder computes the order parameter over the whole population.
func GlobalOrder(theta []float64) float64 {
	if len(theta) == 0 {
		return 0
	}
	var sumSin, sumCos float64
	for _, t := range theta {
		s, co := math.Sincos(t)
		sumSin += s
		sumCos += co
	}
	return math.Hypot(sumCos, sumSin) / float64(len(theta))
}
