package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"chimera/internal/dynamo"
	"chimera/internal/kuramoto"
	"chimera/internal/synchrony"
)

// DefaultReportEvery is the observation interval in timesteps.
const DefaultReportEvery = 100

// Simulator sequences one run: build the coupling matrix, draw initial
// phases, advance the integrator timestep by timestep, feed the synchrony
// window, and emit observation events. It performs no numerics of its own.
type Simulator struct {
	params      kuramoto.Params
	scheme      kuramoto.Scheme
	reportEvery int
	observers   []Observer
}

func New(p kuramoto.Params) *Simulator {
	return &Simulator{
		params:      p,
		reportEvery: DefaultReportEvery,
	}
}

// SetScheme selects the integration scheme for subsequent runs.
func (s *Simulator) SetScheme(scheme kuramoto.Scheme) { s.scheme = scheme }

// SetReportEvery sets the observation interval in timesteps. Non-positive
// values disable observation events.
func (s *Simulator) SetReportEvery(n int) { s.reportEvery = n }

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run executes the full simulation. The context is checked between
// timesteps only; a canceled run returns ctx.Err with partial data
// discarded. NaN or Inf phases abort immediately with a step-stamped
// error.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	p := s.params
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	net := kuramoto.NewNetwork(p, rng)
	integ := kuramoto.NewIntegrator(net, s.scheme, p.H)
	window := synchrony.NewWindow(p.WS, p.N1)

	theta := net.InitialPhases(rng)
	history := make([]dynamo.Phases, 0, p.TTot)
	history = append(history, theta)
	window.Push(synchrony.OrderParameters(theta, p.N0, p.N1))

	for t := 1; t < p.TTot; t++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		theta = integ.Step(theta)
		if !theta.IsValid() {
			return nil, &dynamo.SimulationError{
				Step:    t,
				Time:    float64(t),
				Wrapped: dynamo.ErrInvalidState,
			}
		}

		history = append(history, theta)
		window.Push(synchrony.OrderParameters(theta, p.N0, p.N1))

		if s.reportEvery > 0 && t%s.reportEvery == 0 {
			for _, o := range s.observers {
				o.OnObserve(t, theta, window.Rows())
			}
		}
	}

	rows := window.Rows()
	return &Result{
		Params:    p,
		Scheme:    integ.Scheme(),
		Seed:      seed,
		Phases:    history,
		Synchrony: rows,
		Stats:     synchrony.Compute(rows, kuramoto.TransientLen/p.WS),
	}, nil
}
