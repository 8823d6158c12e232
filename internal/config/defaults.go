package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration.
// It mirrors defaults/blocks.yaml and is used if the embedded file fails to parse.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Playfield: PlayfieldConfig{
			Rows:    20,
			Columns: 10,
		},
		Timing: TimingConfig{
			GravityMS: 700,
		},
		Pieces: PiecesConfig{
			Randomizer: "bag",
		},
		Display: DisplayConfig{
			Ghost:   true,
			Preview: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
