package kuramoto

import "math/rand"

// Coupling is the weighted adjacency matrix of the network: symmetric,
// zero diagonal, entries drawn from {0, k0, k1}. Built once per run and
// immutable afterward, so it is safe to share across readers.
type Coupling struct {
	w [][]float64
	n int
}

// BuildCoupling samples a community-structured coupling matrix. For every
// unordered pair i<j one uniform draw decides the edge: probability d0/n0
// with weight k0 inside a community, d1/(n0*n1) with weight k1 across
// communities. Probabilities above 1 make the pair always connect.
func BuildCoupling(p Params, rng *rand.Rand) *Coupling {
	n := p.NTot()
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}

	pIntra := p.D0 / float64(p.N0)
	pInter := p.D1 / float64(p.NTot())
	k0 := p.K0()
	k1 := p.K1()

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			prob, weight := pInter, k1
			if p.Community(i) == p.Community(j) {
				prob, weight = pIntra, k0
			}
			if rng.Float64() < prob {
				w[i][j] = weight
				w[j][i] = weight
			}
		}
	}

	return &Coupling{w: w, n: n}
}

// Size returns the matrix dimension.
func (c *Coupling) Size() int { return c.n }

// At returns the coupling weight between oscillators i and j.
func (c *Coupling) At(i, j int) float64 { return c.w[i][j] }

// Row returns the read-only coupling row of oscillator i.
func (c *Coupling) Row(i int) []float64 { return c.w[i] }

// Degree returns the number of nonzero entries in row i.
func (c *Coupling) Degree(i int) int {
	d := 0
	for _, v := range c.w[i] {
		if v != 0 {
			d++
		}
	}
	return d
}
