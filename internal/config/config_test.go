package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultBlocksConfig() {
		t.Errorf("embedded defaults = %+v, hardcoded = %+v", cfg, DefaultBlocksConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.Gravity() != 700*time.Millisecond {
		t.Errorf("Gravity() = %v, want 700ms", cfg.Gravity())
	}
}

func TestLoadBlocksCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := "playfield:\n  rows: 12\npieces:\n  randomizer: random\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() failed: %v", err)
	}
	if cfg.Playfield.Rows != 12 {
		t.Errorf("Rows = %d, want 12", cfg.Playfield.Rows)
	}
	if cfg.Playfield.Columns != 10 {
		t.Errorf("Columns = %d, want default 10", cfg.Playfield.Columns)
	}
	if cfg.Pieces.Randomizer != "random" {
		t.Errorf("Randomizer = %q, want random", cfg.Pieces.Randomizer)
	}
	if cfg.Timing.GravityMS != 700 {
		t.Errorf("GravityMS = %d, want default 700", cfg.Timing.GravityMS)
	}
}

func TestLoadBlocksErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlocks(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("playfield: [1, 2"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadBlocks(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	tiny := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("playfield:\n  rows: 2\n  columns: 2\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadBlocks(tiny)
	if err == nil {
		t.Fatal("tiny playfield should fail validation")
	}
	if !strings.Contains(err.Error(), "smaller than") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BlocksConfig)
		wantErr bool
	}{
		{"defaults", func(*BlocksConfig) {}, false},
		{"minimum size", func(c *BlocksConfig) { c.Playfield = PlayfieldConfig{Rows: 4, Columns: 4} }, false},
		{"too few columns", func(c *BlocksConfig) { c.Playfield.Columns = 3 }, true},
		{"zero gravity", func(c *BlocksConfig) { c.Timing.GravityMS = 0 }, true},
		{"unknown randomizer", func(c *BlocksConfig) { c.Pieces.Randomizer = "tgm" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
