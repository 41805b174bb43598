package sim

import (
	"chimera/internal/dynamo"
	"chimera/internal/kuramoto"
	"chimera/internal/synchrony"
)

// Observer receives observation events at the configured reporting
// interval. Observers only consume data; rendering happens outside the
// simulation core.
type Observer interface {
	// OnObserve is called with the current timestep, a read-only phase
	// snapshot, and the downsampled synchrony rows emitted so far.
	OnObserve(step int, phases dynamo.Phases, synchrony [][]float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(step int, phases dynamo.Phases, synchrony [][]float64)

func (f ObserverFunc) OnObserve(step int, phases dynamo.Phases, sync [][]float64) {
	f(step, phases, sync)
}

// Result holds everything one run produced. Phases has one row per
// timestep; Synchrony one row per downsampling window.
type Result struct {
	Params    kuramoto.Params
	Scheme    kuramoto.Scheme
	Seed      int64 // effective seed, resolved when Params.Seed is zero
	Phases    []dynamo.Phases
	Synchrony [][]float64
	Stats     synchrony.Stats
}
