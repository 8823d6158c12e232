// Package config provides YAML-based game configuration loading for the
// falling-block game.
package config

import (
	"fmt"
	"time"
)

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Timing    TimingConfig    `yaml:"timing"`
	Pieces    PiecesConfig    `yaml:"pieces"`
	Display   DisplayConfig   `yaml:"display"`
}

// PlayfieldConfig defines the grid dimensions.
type PlayfieldConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// TimingConfig defines the gravity cadence driven by the platform ticks.
type TimingConfig struct {
	GravityMS int `yaml:"gravity_ms"` // Delay between automatic one-row drops
}

// PiecesConfig defines how the next piece is chosen.
type PiecesConfig struct {
	Randomizer string `yaml:"randomizer"` // "bag" or "random"
}

// DisplayConfig toggles optional rendering features.
type DisplayConfig struct {
	Ghost   bool `yaml:"ghost"`
	Preview bool `yaml:"preview"`
}

// Minimum playfield size accepted by Validate.
const (
	MinRows    = 4
	MinColumns = 4
)

// Gravity returns the gravity interval as a duration.
func (c BlocksConfig) Gravity() time.Duration {
	return time.Duration(c.Timing.GravityMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c BlocksConfig) Validate() error {
	if c.Playfield.Rows < MinRows || c.Playfield.Columns < MinColumns {
		return fmt.Errorf("config: playfield %dx%d is smaller than %dx%d",
			c.Playfield.Rows, c.Playfield.Columns, MinRows, MinColumns)
	}
	if c.Timing.GravityMS <= 0 {
		return fmt.Errorf("config: gravity_ms must be positive, got %d", c.Timing.GravityMS)
	}
	switch c.Pieces.Randomizer {
	case "bag", "random":
	default:
		return fmt.Errorf("config: unknown randomizer %q (want bag or random)", c.Pieces.Randomizer)
	}
	return nil
}
