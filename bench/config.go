package bench

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/flowlab/flownet"
	"github.com/katalvlaran/flowlab/maxflow"
)

// Graph family names accepted in configuration.
const (
	FamilyErdosRenyi = "erdos_renyi"
	FamilyLayered    = "layered"
	FamilyBipartite  = "bipartite"
)

const defaultRepeats = 1

// FamilyParams is the union of the per-family parameter grids; each
// family reads only its own fields (see Validate).
type FamilyParams struct {
	// NValues: node counts (erdos_renyi) or partition sizes (bipartite).
	NValues []int `mapstructure:"n_values"`

	// PValues: edge probabilities (erdos_renyi, bipartite).
	PValues []float64 `mapstructure:"p_values"`

	// P: single inter-layer edge probability (layered).
	P float64 `mapstructure:"p"`

	// CapMax: upper bound of the uniform integer capacity draw.
	CapMax int `mapstructure:"cap_max"`

	// LayersValues, WidthValues: grid dimensions (layered).
	LayersValues []int `mapstructure:"layers_values"`
	WidthValues  []int `mapstructure:"width_values"`
}

// Family pairs a family name with its parameter grid.
type Family struct {
	Name   string       `mapstructure:"name"`
	Params FamilyParams `mapstructure:"params"`
}

// Config is one experiment: which algorithms, over which graph
// families, with which seeds.
type Config struct {
	Name       string   `mapstructure:"exp_name"`
	OutputDir  string   `mapstructure:"output_dir"`
	Seeds      []int64  `mapstructure:"seeds"`
	Repeats    int      `mapstructure:"repeats"`
	Algorithms []string `mapstructure:"algorithms"`
	Families   []Family `mapstructure:"graph_families"`
}

// LoadConfig reads an experiment config (JSON or YAML, by extension)
// and validates it eagerly.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("exp_name", "exp")
	v.SetDefault("repeats", defaultRepeats)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("bench: read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("bench: decode config %s: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = fmt.Sprintf("results/exp_%s", cfg.Name)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate applies the eager checks: non-empty seeds, resolvable
// algorithm names, known families, and sane per-family grids.
func (c Config) Validate() error {
	if len(c.Seeds) == 0 {
		return fmt.Errorf("bench: config needs at least one seed: %w", flownet.ErrInvalidArgument)
	}
	if c.Repeats <= 0 {
		return fmt.Errorf("bench: repeats=%d must be positive: %w", c.Repeats, flownet.ErrInvalidArgument)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("bench: config needs at least one algorithm: %w", flownet.ErrInvalidArgument)
	}
	for _, name := range c.Algorithms {
		if _, err := maxflow.ByName(name); err != nil {
			return err
		}
	}
	if len(c.Families) == 0 {
		return fmt.Errorf("bench: config needs at least one graph family: %w", flownet.ErrInvalidArgument)
	}
	for _, f := range c.Families {
		if err := f.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f Family) validate() error {
	switch f.Name {
	case FamilyErdosRenyi, FamilyBipartite:
		if len(f.Params.NValues) == 0 || len(f.Params.PValues) == 0 {
			return fmt.Errorf("bench: family %s needs n_values and p_values: %w", f.Name, flownet.ErrInvalidArgument)
		}
	case FamilyLayered:
		if len(f.Params.LayersValues) == 0 || len(f.Params.WidthValues) == 0 {
			return fmt.Errorf("bench: family %s needs layers_values and width_values: %w", f.Name, flownet.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("bench: unknown graph family %q: %w", f.Name, flownet.ErrInvalidArgument)
	}
	return nil
}

// capMax returns the configured capacity bound or the original default.
func (p FamilyParams) capMax() int {
	if p.CapMax > 0 {
		return p.CapMax
	}
	return 20
}

// interLayerP returns the layered family's probability or its default.
func (p FamilyParams) interLayerP() float64 {
	if p.P > 0 {
		return p.P
	}
	return 0.3
}
