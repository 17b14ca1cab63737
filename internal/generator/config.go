package generator

import (
	"github.com/janpfeifer/mazeGo/internal/grid"
	"github.com/janpfeifer/mazeGo/internal/parameters"
	"github.com/pkg/errors"
	"math/rand/v2"
	"strings"
)

const (
	DefaultWidth  = 30
	DefaultHeight = 30
)

// Config of a maze generation.
type Config struct {
	Width, Height      int
	StartCol, StartRow int

	// Seed of the random source. If 0, a random seed is drawn when the Config is used.
	Seed uint64
}

// DefaultConfig returns a 30x30 maze, starting at the upper-left corner, with a random seed.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

// NewConfigFromString parses a comma-separated list of parameters on top of base.
// Valid keys are "width", "height", "start_col", "start_row" and "seed", e.g.:
//
//	"width=40,height=20,seed=7"
//
// Unknown keys return an error. An empty config returns base.
func NewConfigFromString(base Config, config string) (Config, error) {
	c := base
	if strings.TrimSpace(config) == "" {
		return c, nil
	}
	params := parameters.NewFromConfigString(config)
	var err error
	for _, field := range []struct {
		key   string
		value *int
	}{
		{"width", &c.Width},
		{"height", &c.Height},
		{"start_col", &c.StartCol},
		{"start_row", &c.StartRow},
	} {
		*field.value, err = parameters.PopParamOr(params, field.key, *field.value)
		if err != nil {
			return base, err
		}
	}
	if c.Seed, err = parameters.PopParamOr(params, "seed", c.Seed); err != nil {
		return base, err
	}
	if err = parameters.CheckAllUsed(params, config); err != nil {
		return base, errors.WithMessage(err, "invalid maze configuration")
	}
	return c, nil
}

// WithSeed returns a copy of the Config with the given seed.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = seed
	return c
}

// ForIndex returns the Config of the idx-th maze of a batch: its seed is Seed+idx, skipping 0
// (which would mean a random seed) if the sum wraps around.
func (c Config) ForIndex(idx int) Config {
	seed := c.Seed + uint64(idx)
	if seed < c.Seed {
		seed++
	}
	c.Seed = seed
	return c
}

// ResolveSeed returns the Config with a non-zero seed, drawing one randomly if Seed is 0.
func (c Config) ResolveSeed() Config {
	for c.Seed == 0 {
		c.Seed = rand.Uint64()
	}
	return c
}

// Generate the maze described by the Config.
// If Seed is 0 a random one is used: call ResolveSeed first to know which.
func (c Config) Generate() (*grid.Grid, Stats, error) {
	c = c.ResolveSeed()
	g, stats, err := GenerateWithStats(c.Width, c.Height, c.StartCol, c.StartRow, NewRandomSource(c.Seed))
	if err != nil {
		return nil, stats, errors.WithMessagef(err, "maze seed=%d", c.Seed)
	}
	return g, stats, nil
}
