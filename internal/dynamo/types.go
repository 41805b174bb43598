package dynamo

import "math"

// Phases is a vector of oscillator phase angles, one per oscillator.
type Phases []float64

func (p Phases) Clone() Phases {
	c := make(Phases, len(p))
	copy(c, p)
	return c
}

func (p Phases) IsValid() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Wrap normalizes every component into (-pi, pi] in place.
func (p Phases) Wrap() {
	for i, v := range p {
		p[i] = WrapAngle(v)
	}
}

// WrapAngle maps an angle onto (-pi, pi].
func WrapAngle(theta float64) float64 {
	m := math.Mod(theta+math.Pi, 2*math.Pi)
	if m <= 0 {
		m += 2 * math.Pi
	}
	return m - math.Pi
}
