// Package config provides configuration loading and access for the
// noise generation commands.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/noisefield/generator"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config describes one generation run: the output grid, a list of noise
// layers, and how the layers are combined.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Combine string        `yaml:"combine"`
	Layers  []LayerConfig `yaml:"layers"`
}

// OutputConfig holds the grid dimensions and output directory.
type OutputConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Dir    string `yaml:"dir"`
}

// LayerConfig is the YAML-facing parameter bundle for one noise layer.
// Zero values mean "use the canonical default" so sparse layer blocks
// stay short.
type LayerConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Seed 0 is indistinguishable from "unset" and becomes the
	// canonical default seed; a layer that needs seed 0 does not exist.
	Seed uint32 `yaml:"seed"`
	Scale      float64 `yaml:"scale"`
	Octaves    int     `yaml:"octaves"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`
	Amplitude  float64 `yaml:"amplitude"`
	Frequency  float64 `yaml:"frequency"`
	Bias       float64 `yaml:"bias"`

	NumCells    int     `yaml:"num_cells"`
	Jitter      float64 `yaml:"jitter"`
	NumFeatures int     `yaml:"num_features"`
	Distance    string  `yaml:"distance"`

	Orientation float64 `yaml:"orientation"`
	AspectRatio float64 `yaml:"aspect_ratio"`
	Phase       float64 `yaml:"phase"`

	KernelSize int     `yaml:"kernel_size"`
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
}

// Params converts the layer block into a generator parameter bundle for
// the given grid dimensions, filling omitted fields from the defaults.
func (l LayerConfig) Params(width, height int) (generator.Params, error) {
	p := generator.Default()
	p.Width = width
	p.Height = height

	t, err := generator.ParseType(l.Type)
	if err != nil {
		return p, fmt.Errorf("layer %q: %w", l.Name, err)
	}
	p.Type = t

	if l.Distance != "" {
		d, err := generator.ParseDistance(l.Distance)
		if err != nil {
			return p, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		p.Distance = d
	}

	if l.Seed != 0 {
		p.Seed = l.Seed
	}
	if l.Scale != 0 {
		p.Scale = l.Scale
	}
	if l.Octaves != 0 {
		p.Octaves = l.Octaves
	}
	if l.Lacunarity != 0 {
		p.Lacunarity = l.Lacunarity
	}
	if l.Gain != 0 {
		p.Gain = l.Gain
	}
	if l.Amplitude != 0 {
		p.Amplitude = l.Amplitude
	}
	if l.Frequency != 0 {
		p.Frequency = l.Frequency
	}
	p.Bias = l.Bias
	if l.NumCells != 0 {
		p.NumCells = l.NumCells
	}
	if l.Jitter != 0 {
		p.Jitter = l.Jitter
	}
	if l.NumFeatures != 0 {
		p.NumFeatures = l.NumFeatures
	}
	p.Orientation = l.Orientation
	if l.AspectRatio != 0 {
		p.AspectRatio = l.AspectRatio
	}
	p.Phase = l.Phase
	if l.KernelSize != 0 {
		p.KernelSize = l.KernelSize
	}
	p.OffsetX = l.OffsetX
	p.OffsetY = l.OffsetY

	return p, nil
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
