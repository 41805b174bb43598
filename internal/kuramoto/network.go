package kuramoto

import (
	"math"
	"math/rand"

	"chimera/internal/dynamo"
)

// Network bundles the coupling matrix, natural frequencies, and derived
// constants of one oscillator population. The governing law per oscillator:
//
//	dtheta_i/dt = w_i + (1/(d0+d1)) * sum_j K_ij * sin(theta_j - theta_i - alpha)
type Network struct {
	params   Params
	coupling *Coupling
	omega    []float64
	alpha    float64
	invD     float64
}

// NewNetwork builds the coupling matrix and draws natural frequencies from
// the supplied random source. The source is consumed in a fixed order
// (matrix first, then frequencies) so a seeded run is reproducible.
func NewNetwork(p Params, rng *rand.Rand) *Network {
	n := p.NTot()
	omega := make([]float64, n)
	coupling := BuildCoupling(p, rng)
	for i := range omega {
		omega[i] = p.Omega
		if p.OmegaSpread > 0 {
			omega[i] += (2*rng.Float64() - 1) * p.OmegaSpread
		}
	}

	return &Network{
		params:   p,
		coupling: coupling,
		omega:    omega,
		alpha:    p.Alpha(),
		invD:     1 / p.DMean(),
	}
}

func (n *Network) Size() int           { return n.coupling.n }
func (n *Network) Params() Params      { return n.params }
func (n *Network) Coupling() *Coupling { return n.coupling }

// Omega returns the natural frequency of oscillator i.
func (n *Network) Omega(i int) float64 { return n.omega[i] }

// InitialPhases draws a uniform phase vector in (-pi, pi].
func (n *Network) InitialPhases(rng *rand.Rand) dynamo.Phases {
	theta := make(dynamo.Phases, n.Size())
	for i := range theta {
		theta[i] = dynamo.WrapAngle(2 * math.Pi * rng.Float64())
	}
	return theta
}

// DeriveAt evaluates the phase velocity of oscillator i against the given
// phase vector. The coupling sum skips zero entries, which dominate for
// sparse degrees.
func (n *Network) DeriveAt(theta dynamo.Phases, i int) float64 {
	row := n.coupling.w[i]
	shifted := theta[i] + n.alpha
	sum := 0.0
	for j, w := range row {
		if w != 0 {
			sum += w * math.Sin(theta[j]-shifted)
		}
	}
	return n.omega[i] + n.invD*sum
}

// Derive evaluates the full phase-velocity vector into out. Oscillators are
// independent given a frozen theta, so the work is chunked across cores.
func (n *Network) Derive(theta dynamo.Phases, out dynamo.Phases) {
	dynamo.ParallelFor(len(theta), 32, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = n.DeriveAt(theta, i)
		}
	})
}
