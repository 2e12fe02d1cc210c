package snake

import (
	"strconv"
	"time"
)

// Board presets offered by the difficulty selector.
const (
	SizeSmall  = 11
	SizeMedium = 17
	SizeLarge  = 25

	minSize = 3
	maxSize = 61

	// DefaultInterval is the time between moves.
	DefaultInterval = 175 * time.Millisecond
)

// Config controls the board and pacing of a Snake game.
type Config struct {
	Size     int
	Interval time.Duration
	Seed     int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: SizeSmall, Interval: DefaultInterval, Seed: 1}
}

// PresetSize maps a preset name to a board size.
func PresetSize(name string) (int, bool) {
	switch name {
	case "small":
		return SizeSmall, true
	case "medium":
		return SizeMedium, true
	case "large":
		return SizeLarge, true
	}
	return 0, false
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["preset"]; ok {
		if size, ok := PresetSize(v); ok {
			c.Size = size
		}
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c.normalized()
}

func (c Config) normalized() Config {
	if c.Size < minSize {
		c.Size = minSize
	}
	if c.Size > maxSize {
		c.Size = maxSize
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	return c
}
