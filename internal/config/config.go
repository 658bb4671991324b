// Package config holds start-up settings shared by the front ends.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"gol-torus/internal/core"
	"gol-torus/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows    int
	Cols    int
	Pattern string
	Seed    int64
	Scale   int
	Speed   int
	File    string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:    life.DefaultRows,
		Cols:    life.DefaultCols,
		Pattern: string(life.Random),
		Seed:    42,
		Scale:   10,
		Speed:   core.DefaultSpeed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: random, spaceships or oscillators")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial speed level, 0 (slowest) to 6 (fastest)")
	fs.StringVar(&c.File, "config", c.File, "optional HCL settings file; explicit flags override it")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// fileConfig mirrors Config for HCL decoding. Pointers tell unset from zero.
type fileConfig struct {
	Rows    *int    `hcl:"rows,optional"`
	Cols    *int    `hcl:"cols,optional"`
	Pattern *string `hcl:"pattern,optional"`
	Seed    *int64  `hcl:"seed,optional"`
	Scale   *int    `hcl:"scale,optional"`
	Speed   *int    `hcl:"speed,optional"`
}

// LoadFile decodes an HCL settings file and applies the attributes it sets.
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	c.apply(fc)
	return nil
}

// LoadBytes is LoadFile for in-memory sources; filename only labels diagnostics
// and selects the syntax by extension.
func (c *Config) LoadBytes(filename string, src []byte) error {
	var fc fileConfig
	if err := hclsimple.Decode(filename, src, nil, &fc); err != nil {
		return fmt.Errorf("load %s: %w", filename, err)
	}
	c.apply(fc)
	return nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.Rows != nil {
		c.Rows = *fc.Rows
	}
	if fc.Cols != nil {
		c.Cols = *fc.Cols
	}
	if fc.Pattern != nil {
		c.Pattern = *fc.Pattern
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Scale != nil {
		c.Scale = *fc.Scale
	}
	if fc.Speed != nil {
		c.Speed = *fc.Speed
	}
}

// Validate checks ranges and resolves the pattern id.
func (c *Config) Validate() (life.PatternID, error) {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Rows, c.Cols))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.Speed < 0 || c.Speed >= len(core.DefaultIntervals) {
		errs = append(errs, fmt.Errorf("speed %d out of range 0..%d", c.Speed, len(core.DefaultIntervals)-1))
	}
	id, err := life.ParsePattern(c.Pattern)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return id, nil
}

// Parse binds a fresh Config to fs, parses args, merges the settings file
// named by -config and parses args again so explicit flags win.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.File == "" {
		return c, nil
	}
	if err := c.LoadFile(c.File); err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}
