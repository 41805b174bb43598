package kuramoto

import (
	"fmt"
	"math"

	"chimera/internal/dynamo"
)

// Scheme selects how oscillators see each other's phases within one RK4
// sub-step.
type Scheme int

const (
	// SchemeSequential updates oscillators one at a time in a shared
	// buffer, so later oscillators in a sub-step see already-advanced
	// neighbor phases (Gauss-Seidel ordering). This replicates the
	// reference trajectories.
	SchemeSequential Scheme = iota

	// SchemeSynchronized computes all four RK4 stages from a frozen
	// snapshot into a separate buffer (Jacobi ordering). Trajectories
	// differ from the sequential scheme; per-oscillator work parallelizes.
	SchemeSynchronized
)

func (s Scheme) String() string {
	switch s {
	case SchemeSequential:
		return "sequential"
	case SchemeSynchronized:
		return "synchronized"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// ParseScheme maps a config/CLI name to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "", "sequential", "gauss-seidel":
		return SchemeSequential, nil
	case "synchronized", "jacobi":
		return SchemeSynchronized, nil
	default:
		return 0, fmt.Errorf("unknown integration scheme: %s", name)
	}
}

// Integrator advances a phase vector one unit timestep via classical RK4
// over fixed sub-steps of size h. It owns scratch buffers and must not be
// shared across goroutines.
type Integrator struct {
	net      *Network
	scheme   Scheme
	h        float64
	substeps int

	k1, k2, k3, k4 dynamo.Phases
	scratch        dynamo.Phases
}

// NewIntegrator creates an integrator for net. The unit timestep divides
// into round(1/h) sub-steps; h = 0.05 gives the canonical 20.
func NewIntegrator(net *Network, scheme Scheme, h float64) *Integrator {
	substeps := int(math.Round(1 / h))
	if substeps < 1 {
		substeps = 1
	}
	n := net.Size()
	return &Integrator{
		net:      net,
		scheme:   scheme,
		h:        h,
		substeps: substeps,
		k1:       make(dynamo.Phases, n),
		k2:       make(dynamo.Phases, n),
		k3:       make(dynamo.Phases, n),
		k4:       make(dynamo.Phases, n),
		scratch:  make(dynamo.Phases, n),
	}
}

func (g *Integrator) Scheme() Scheme { return g.scheme }

// Step returns the phase vector one unit timestep after theta, wrapped
// into (-pi, pi]. The input is not modified.
func (g *Integrator) Step(theta dynamo.Phases) dynamo.Phases {
	next := theta.Clone()
	for s := 0; s < g.substeps; s++ {
		if g.scheme == SchemeSynchronized {
			g.substepSynchronized(next)
		} else {
			g.substepSequential(next)
		}
	}
	next.Wrap()
	return next
}

// substepSequential advances each oscillator with a scalar RK4 stage,
// writing back into the shared buffer immediately. Only theta[i] is
// perturbed while evaluating the stages of oscillator i; neighbors j < i
// already carry their new sub-step values.
func (g *Integrator) substepSequential(theta dynamo.Phases) {
	h := g.h
	for i := range theta {
		old := theta[i]

		k1 := g.net.DeriveAt(theta, i)
		theta[i] = old + h*0.5*k1
		k2 := g.net.DeriveAt(theta, i)
		theta[i] = old + h*0.5*k2
		k3 := g.net.DeriveAt(theta, i)
		theta[i] = old + h*k3
		k4 := g.net.DeriveAt(theta, i)

		theta[i] = old + h/6*(k1+2*k2+2*k3+k4)
	}
}

// substepSynchronized performs a vector RK4 stage from a frozen snapshot.
func (g *Integrator) substepSynchronized(theta dynamo.Phases) {
	n := len(theta)
	h := g.h

	g.net.Derive(theta, g.k1)

	for i := 0; i < n; i++ {
		g.scratch[i] = theta[i] + h*0.5*g.k1[i]
	}
	g.net.Derive(g.scratch, g.k2)

	for i := 0; i < n; i++ {
		g.scratch[i] = theta[i] + h*0.5*g.k2[i]
	}
	g.net.Derive(g.scratch, g.k3)

	for i := 0; i < n; i++ {
		g.scratch[i] = theta[i] + h*g.k3[i]
	}
	g.net.Derive(g.scratch, g.k4)

	h6 := h / 6
	for i := 0; i < n; i++ {
		theta[i] += h6 * (g.k1[i] + 2*g.k2[i] + 2*g.k3[i] + g.k4[i])
	}
}
