package app

import (
	"flag"
	"fmt"
	"strings"

	"railsnake/internal/core"
)

// viewExtent is the on-screen edge length targeted when Scale is left at 0.
const viewExtent = 600

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Options  map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "train", TPS: 60, Seed: 42, HUDWidth: 220, Options: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (train or snake)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier, 0 picks one that fits the window")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel, 0 hides it")
	fs.Func("set", "simulation option as key=value, may be repeated", c.setOption)
}

func (c *Config) setOption(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q is not key=value", kv)
	}
	if c.Options == nil {
		c.Options = map[string]string{}
	}
	c.Options[key] = strings.TrimSpace(value)
	return nil
}

// ScaleFor returns the configured scale, or one that brings size close to
// the default view extent when Scale is not positive.
func (c *Config) ScaleFor(size core.Size) int {
	if c.Scale > 0 {
		return c.Scale
	}
	edge := max(size.W, size.H)
	if edge <= 0 {
		return 1
	}
	return max(1, viewExtent/edge)
}
