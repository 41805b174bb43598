package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"chimera/internal/dynamo"
	"chimera/internal/kuramoto"
)

func smallParams() kuramoto.Params {
	p := kuramoto.DefaultParams()
	p.N0 = 8
	p.N1 = 2
	p.D0 = 4
	p.D1 = 4
	p.TTot = 50
	p.WS = 2
	p.Seed = 42
	return p
}

func TestRunInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*kuramoto.Params)
	}{
		{"zero n0", func(p *kuramoto.Params) { p.N0 = 0 }},
		{"zero n1", func(p *kuramoto.Params) { p.N1 = 0 }},
		{"negative d0", func(p *kuramoto.Params) { p.D0 = -1 }},
		{"zero t_tot", func(p *kuramoto.Params) { p.TTot = 0 }},
		{"zero ws", func(p *kuramoto.Params) { p.WS = 0 }},
		{"zero h", func(p *kuramoto.Params) { p.H = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := smallParams()
			tt.mod(&p)
			_, err := New(p).Run(context.Background())
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunShapes(t *testing.T) {
	p := smallParams()
	res, err := New(p).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(res.Phases) != p.TTot {
		t.Errorf("phase history rows = %d, want %d", len(res.Phases), p.TTot)
	}
	for _, row := range res.Phases {
		if len(row) != p.NTot() {
			t.Fatalf("phase row length %d, want %d", len(row), p.NTot())
		}
	}

	if len(res.Synchrony) != p.TTot/p.WS {
		t.Errorf("synchrony rows = %d, want %d", len(res.Synchrony), p.TTot/p.WS)
	}
	for _, row := range res.Synchrony {
		if len(row) != p.N1 {
			t.Fatalf("synchrony row length %d, want %d", len(row), p.N1)
		}
		for _, v := range row {
			if v < 0 || v > 1 {
				t.Fatalf("order parameter %f outside [0,1]", v)
			}
		}
	}

	if res.Seed != p.Seed {
		t.Errorf("effective seed %d, want %d", res.Seed, p.Seed)
	}
}

func TestRunPhaseRange(t *testing.T) {
	p := smallParams()
	res, err := New(p).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for step, row := range res.Phases {
		for i, v := range row {
			if v <= -math.Pi || v > math.Pi {
				t.Fatalf("step %d oscillator %d: %f outside (-pi, pi]", step, i, v)
			}
		}
	}
}

func TestRunDeterminism(t *testing.T) {
	p := smallParams()
	a, err := New(p).Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := New(p).Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	for step := range a.Phases {
		for i := range a.Phases[step] {
			if a.Phases[step][i] != b.Phases[step][i] {
				t.Fatalf("trajectories diverged at step %d oscillator %d", step, i)
			}
		}
	}
	if a.Stats != b.Stats {
		t.Errorf("stats diverged: %+v vs %+v", a.Stats, b.Stats)
	}
}

func TestRunObserverInterval(t *testing.T) {
	p := smallParams()
	s := New(p)
	s.SetReportEvery(10)

	var steps []int
	s.AddObserver(ObserverFunc(func(step int, phases dynamo.Phases, rows [][]float64) {
		steps = append(steps, step)
		if len(phases) != p.NTot() {
			t.Errorf("observer phase length %d", len(phases))
		}
	}))

	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := []int{10, 20, 30, 40}
	if len(steps) != len(want) {
		t.Fatalf("observer fired at %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("observer fired at %v, want %v", steps, want)
		}
	}
}

func TestRunNaNFailsFast(t *testing.T) {
	p := smallParams()
	p.Omega = math.Inf(1) // poisons the first derivative evaluation

	_, err := New(p).Run(context.Background())
	if err == nil {
		t.Fatal("expected failure on non-finite phases")
	}
	if !errors.Is(err, dynamo.ErrInvalidState) {
		t.Errorf("error %v does not wrap ErrInvalidState", err)
	}
	var simErr *dynamo.SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("error %v is not a SimulationError", err)
	}
	if simErr.Step != 1 {
		t.Errorf("failed at step %d, want 1", simErr.Step)
	}
}

func TestRunCancellation(t *testing.T) {
	p := smallParams()
	p.TTot = 10000

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(p).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// Fully connected network of identical oscillators with a small phase lag:
// the whole population locks after a transient.
func TestRunGlobalSynchronization(t *testing.T) {
	p := kuramoto.Params{
		Beta: 1.0, K: 0.0,
		N0: 16, N1: 4,
		D0: 16, D1: 64, // probability 1 everywhere
		TTot: 300, WS: 2, H: 0.05,
		Seed: 42,
	}

	res, err := New(p).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	final := res.Synchrony[len(res.Synchrony)-1]
	for c, v := range final {
		if v < 0.95 {
			t.Errorf("community %d synchrony %f, expected near-total lock", c, v)
		}
	}
}

// Community-structured network in the metastable regime: statistics are
// finite and positive, mean synchrony strictly between the extremes.
func TestRunChimeraSignature(t *testing.T) {
	p := kuramoto.Params{
		Beta: 0.1, K: 0.2,
		N0: 16, N1: 4,
		D0: 16, D1: 16,
		TTot: 400, WS: 2, H: 0.05,
		Seed: 42,
	}

	res, err := New(p).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	s := res.Stats
	for name, v := range map[string]float64{"lambda": s.Lambda, "chi": s.Chi, "phi": s.Phi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s is not finite: %f", name, v)
		}
	}
	if s.Lambda <= 0 {
		t.Errorf("metastability %f, want positive", s.Lambda)
	}
	if s.Chi <= 0 {
		t.Errorf("chimera index %f, want positive", s.Chi)
	}
	if s.Phi <= 0 || s.Phi >= 1 {
		t.Errorf("mean synchrony %f, want strictly inside (0,1)", s.Phi)
	}
}
