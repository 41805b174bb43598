package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"chimera/internal/kuramoto"
	"chimera/internal/synchrony"
)

// SweepPoint is one cell of a parameter grid with its run statistics.
type SweepPoint struct {
	Beta  float64
	K     float64
	Stats synchrony.Stats
}

// Sweep runs the beta x k parameter grid, one independent run per cell.
// All cells share the base parameters (including the seed, so cells differ
// only in beta and k) and run concurrently up to NumCPU at a time. Phase
// histories are dropped; only statistics are kept. Observation events do
// not fire during sweeps.
func Sweep(ctx context.Context, base kuramoto.Params, betas, ks []float64, scheme kuramoto.Scheme) ([]SweepPoint, error) {
	points := make([]SweepPoint, len(betas)*len(ks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for bi, beta := range betas {
		for ki, k := range ks {
			beta, k := beta, k
			idx := bi*len(ks) + ki
			p := base
			p.Beta = beta
			p.K = k

			g.Go(func() error {
				s := New(p)
				s.SetScheme(scheme)
				s.SetReportEvery(0)
				res, err := s.Run(ctx)
				if err != nil {
					return err
				}
				points[idx] = SweepPoint{Beta: beta, K: k, Stats: res.Stats}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
