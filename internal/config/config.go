package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/emgrid/internal/em"
)

const (
	DefaultWidth      = 51
	DefaultHeight     = 51
	DefaultIterations = 1000
)

// Config describes a world and the wires to place in it. It is both
// the yaml file format and the preset format.
type Config struct {
	Shape      []int      `yaml:"shape"`
	Iterations int        `yaml:"iterations"`
	Wires      []WireSpec `yaml:"wires"`
}

// WireSpec is one wire entry in a config file. Current takes 2 or 3
// components; the z-component defaults to 0.
type WireSpec struct {
	Start   []int     `yaml:"start"`
	Stop    []int     `yaml:"stop"`
	Current []float64 `yaml:"current"`
	Voltage float64   `yaml:"voltage"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape:      []int{DefaultWidth, DefaultHeight},
		Iterations: DefaultIterations,
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

// BuildWorld creates the world and places every wire as one circuit,
// in file order.
func (c *Config) BuildWorld() (*em.World, error) {
	world, err := em.NewWorld(c.Shape...)
	if err != nil {
		return nil, err
	}
	if len(c.Wires) == 0 {
		return world, nil
	}

	wires := make([]*em.Wire, 0, len(c.Wires))
	for i, spec := range c.Wires {
		wire, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("wire %d: %w", i, err)
		}
		wires = append(wires, wire)
	}
	world.Place(em.NewCircuit(wires...))
	return world, nil
}

func (s WireSpec) build() (*em.Wire, error) {
	if len(s.Start) != 2 || len(s.Stop) != 2 {
		return nil, fmt.Errorf("start and stop must have 2 coordinates")
	}
	if len(s.Current) != 2 && len(s.Current) != 3 {
		return nil, fmt.Errorf("current must have 2 or 3 components")
	}
	cur := em.Current{X: s.Current[0], Y: s.Current[1]}
	if len(s.Current) == 3 {
		cur.Z = s.Current[2]
	}
	return em.NewWire(
		em.Cell{X: s.Start[0], Y: s.Start[1]},
		em.Cell{X: s.Stop[0], Y: s.Stop[1]},
		cur,
		s.Voltage,
	)
}
