package kuramoto

import (
	"fmt"
	"math"
)

// Defaults reproduce the community-structured metastable regime.
const (
	DefaultBeta  = 0.1
	DefaultK     = 0.2
	DefaultN0    = 32
	DefaultN1    = 8
	DefaultD0    = 32.0
	DefaultD1    = 32.0
	DefaultTTot  = 1000
	DefaultWS    = 2
	DefaultH     = 0.05
	TransientLen = 200
)

// Params is the immutable configuration of one network run. All derived
// quantities (alpha, k0, k1, n_tot) come from accessor methods so the raw
// fields stay the single source of truth.
type Params struct {
	Beta float64 // phase-lag base, alpha = pi/2 - beta
	K    float64 // coupling fraction, k1 = (1-K)/2, k0 = 1 - k1
	N0   int     // oscillators per community
	N1   int     // number of communities
	D0   float64 // expected intra-community degree
	D1   float64 // expected inter-community degree
	TTot int     // simulated timesteps
	WS   int     // downsampling window for synchrony reporting
	H    float64 // RK4 sub-step size

	// Seed selects the random stream for matrix construction and initial
	// phases. Zero means time-derived (non-reproducible).
	Seed int64

	// Natural frequency distribution: each oscillator draws uniformly from
	// Omega +/- OmegaSpread. Zero spread gives identical oscillators.
	Omega       float64
	OmegaSpread float64
}

func DefaultParams() Params {
	return Params{
		Beta: DefaultBeta,
		K:    DefaultK,
		N0:   DefaultN0,
		N1:   DefaultN1,
		D0:   DefaultD0,
		D1:   DefaultD1,
		TTot: DefaultTTot,
		WS:   DefaultWS,
		H:    DefaultH,
	}
}

// NTot returns the total oscillator count.
func (p Params) NTot() int { return p.N0 * p.N1 }

// Alpha returns the phase lag pi/2 - beta.
func (p Params) Alpha() float64 { return math.Pi/2 - p.Beta }

// K1 returns the inter-community coupling weight (1-K)/2.
func (p Params) K1() float64 { return (1 - p.K) / 2 }

// K0 returns the intra-community coupling weight 1 - K1.
func (p Params) K0() float64 { return 1 - p.K1() }

// DMean returns the coupling normalizer d0 + d1.
func (p Params) DMean() float64 { return p.D0 + p.D1 }

// Community returns the community index of oscillator i.
func (p Params) Community(i int) int { return i / p.N0 }

// Validate reports the first configuration problem found. Connection
// probabilities above 1 (d0 > n0) are deliberately legal: such pairs
// always connect.
func (p Params) Validate() error {
	if p.N0 <= 0 {
		return fmt.Errorf("n0 must be positive, got %d", p.N0)
	}
	if p.N1 <= 0 {
		return fmt.Errorf("n1 must be positive, got %d", p.N1)
	}
	if p.D0 <= 0 {
		return fmt.Errorf("d0 must be positive, got %g", p.D0)
	}
	if p.D1 <= 0 {
		return fmt.Errorf("d1 must be positive, got %g", p.D1)
	}
	if p.TTot <= 0 {
		return fmt.Errorf("t_tot must be positive, got %d", p.TTot)
	}
	if p.WS <= 0 {
		return fmt.Errorf("ws must be positive, got %d", p.WS)
	}
	if p.H <= 0 || p.H > 1 {
		return fmt.Errorf("sub-step h must be in (0, 1], got %g", p.H)
	}
	if p.OmegaSpread < 0 {
		return fmt.Errorf("omega_spread must be non-negative, got %g", p.OmegaSpread)
	}
	return nil
}
