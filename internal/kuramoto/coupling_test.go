package kuramoto

import (
	"math/rand"
	"testing"
)

func testParams() Params {
	p := DefaultParams()
	p.N0 = 8
	p.N1 = 4
	p.D0 = 4
	p.D1 = 8
	p.Seed = 42
	return p
}

func TestCouplingInvariants(t *testing.T) {
	p := testParams()
	c := BuildCoupling(p, rand.New(rand.NewSource(p.Seed)))

	n := c.Size()
	if n != p.NTot() {
		t.Fatalf("size %d, want %d", n, p.NTot())
	}

	k0 := p.K0()
	k1 := p.K1()
	for i := 0; i < n; i++ {
		if c.At(i, i) != 0 {
			t.Fatalf("diagonal [%d][%d] = %f, want 0", i, i, c.At(i, i))
		}
		for j := 0; j < n; j++ {
			v := c.At(i, j)
			if v != c.At(j, i) {
				t.Fatalf("asymmetric at [%d][%d]: %f vs %f", i, j, v, c.At(j, i))
			}
			if v == 0 {
				continue
			}
			if p.Community(i) == p.Community(j) && v != k0 {
				t.Fatalf("intra edge [%d][%d] = %f, want %f", i, j, v, k0)
			}
			if p.Community(i) != p.Community(j) && v != k1 {
				t.Fatalf("inter edge [%d][%d] = %f, want %f", i, j, v, k1)
			}
		}
	}
}

func TestCouplingDeterminism(t *testing.T) {
	p := testParams()
	a := BuildCoupling(p, rand.New(rand.NewSource(7)))
	b := BuildCoupling(p, rand.New(rand.NewSource(7)))

	for i := 0; i < a.Size(); i++ {
		for j := 0; j < a.Size(); j++ {
			if a.At(i, j) != b.At(i, j) {
				t.Fatalf("same seed diverged at [%d][%d]", i, j)
			}
		}
	}

	c := BuildCoupling(p, rand.New(rand.NewSource(8)))
	same := true
	for i := 0; i < a.Size() && same; i++ {
		for j := 0; j < a.Size(); j++ {
			if a.At(i, j) != c.At(i, j) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical matrices")
	}
}

// Intra-community probability d0/n0 above 1 is not clamped: every
// same-community pair must connect.
func TestCouplingOversaturatedDegree(t *testing.T) {
	p := testParams()
	p.D0 = float64(2 * p.N0)
	c := BuildCoupling(p, rand.New(rand.NewSource(1)))

	for i := 0; i < c.Size(); i++ {
		for j := 0; j < c.Size(); j++ {
			if i != j && p.Community(i) == p.Community(j) && c.At(i, j) == 0 {
				t.Fatalf("pair [%d][%d] should always connect at p>1", i, j)
			}
		}
	}
}

func TestCouplingExpectedDegree(t *testing.T) {
	p := testParams()
	p.N0 = 32
	p.N1 = 8
	p.D0 = 32
	p.D1 = 32
	c := BuildCoupling(p, rand.New(rand.NewSource(3)))

	// d0 = n0 saturates intra probability at 1, so each oscillator holds
	// exactly n0-1 intra edges plus a binomial number of inter edges with
	// mean d1*(1 - 1/n1).
	total := 0
	for i := 0; i < c.Size(); i++ {
		total += c.Degree(i)
	}
	mean := float64(total) / float64(c.Size())
	want := p.D0 - 1 + p.D1*(1-1/float64(p.N1))
	if mean < want-4 || mean > want+4 {
		t.Errorf("mean degree %.1f far from expected %.1f", mean, want)
	}
}
