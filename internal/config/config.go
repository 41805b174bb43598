package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"chimera/internal/kuramoto"
)

// Config is the YAML-facing run configuration. Zero-valued numeric fields
// fall back to defaults when loaded, so partial files are fine.
type Config struct {
	Beta        float64 `yaml:"beta"`
	K           float64 `yaml:"k"`
	N0          int     `yaml:"n0"`
	N1          int     `yaml:"n1"`
	D0          float64 `yaml:"d0"`
	D1          float64 `yaml:"d1"`
	TTot        int     `yaml:"t_tot"`
	WS          int     `yaml:"ws"`
	H           float64 `yaml:"h"`
	Seed        int64   `yaml:"seed"`
	Omega       float64 `yaml:"omega"`
	OmegaSpread float64 `yaml:"omega_spread"`
	Scheme      string  `yaml:"scheme"`
	ReportEvery int     `yaml:"report_every"`
}

func DefaultConfig() *Config {
	p := kuramoto.DefaultParams()
	return &Config{
		Beta:        p.Beta,
		K:           p.K,
		N0:          p.N0,
		N1:          p.N1,
		D0:          p.D0,
		D1:          p.D1,
		TTot:        p.TTot,
		WS:          p.WS,
		H:           p.H,
		Scheme:      "sequential",
		ReportEvery: 100,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the configuration into the immutable run parameters.
func (c *Config) Params() kuramoto.Params {
	return kuramoto.Params{
		Beta:        c.Beta,
		K:           c.K,
		N0:          c.N0,
		N1:          c.N1,
		D0:          c.D0,
		D1:          c.D1,
		TTot:        c.TTot,
		WS:          c.WS,
		H:           c.H,
		Seed:        c.Seed,
		Omega:       c.Omega,
		OmegaSpread: c.OmegaSpread,
	}
}
