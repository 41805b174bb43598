package kuramoto

import (
	"math"
	"testing"
)

func TestParamsDerived(t *testing.T) {
	p := DefaultParams()

	if p.NTot() != p.N0*p.N1 {
		t.Errorf("NTot = %d, want %d", p.NTot(), p.N0*p.N1)
	}
	if math.Abs(p.Alpha()-(math.Pi/2-p.Beta)) > 1e-12 {
		t.Errorf("Alpha = %f", p.Alpha())
	}
	if math.Abs(p.K1()-(1-p.K)/2) > 1e-12 {
		t.Errorf("K1 = %f", p.K1())
	}
	if math.Abs(p.K0()+p.K1()-1) > 1e-12 {
		t.Error("k0 + k1 should equal 1")
	}
	if p.DMean() != p.D0+p.D1 {
		t.Errorf("DMean = %f", p.DMean())
	}
}

func TestParamsCommunity(t *testing.T) {
	p := DefaultParams()
	p.N0 = 4
	p.N1 = 3

	tests := []struct{ i, want int }{
		{0, 0}, {3, 0}, {4, 1}, {7, 1}, {8, 2}, {11, 2},
	}
	for _, tt := range tests {
		if got := p.Community(tt.i); got != tt.want {
			t.Errorf("Community(%d) = %d, want %d", tt.i, got, tt.want)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	mod := func(f func(*Params)) Params {
		p := DefaultParams()
		f(&p)
		return p
	}

	tests := []struct {
		name    string
		p       Params
		wantErr bool
	}{
		{"defaults", DefaultParams(), false},
		{"zero n0", mod(func(p *Params) { p.N0 = 0 }), true},
		{"negative n1", mod(func(p *Params) { p.N1 = -1 }), true},
		{"zero d0", mod(func(p *Params) { p.D0 = 0 }), true},
		{"negative d1", mod(func(p *Params) { p.D1 = -2 }), true},
		{"zero steps", mod(func(p *Params) { p.TTot = 0 }), true},
		{"zero window", mod(func(p *Params) { p.WS = 0 }), true},
		{"zero substep", mod(func(p *Params) { p.H = 0 }), true},
		{"substep above one", mod(func(p *Params) { p.H = 1.5 }), true},
		{"negative spread", mod(func(p *Params) { p.OmegaSpread = -0.1 }), true},
		{"oversaturated degree ok", mod(func(p *Params) { p.D0 = 1000 }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
