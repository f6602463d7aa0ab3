package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultTossConfig() {
		t.Errorf("embedded YAML drifted from DefaultTossConfig():\n%+v\n%+v", cfg, DefaultTossConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("round:\n  wait_ticks: 30\ncat:\n  chance: 1.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Round.WaitTicks != 30 {
		t.Errorf("WaitTicks = %d, expected 30", cfg.Round.WaitTicks)
	}
	if cfg.Cat.Chance != 1.0 {
		t.Errorf("Cat.Chance = %f, expected 1.0", cfg.Cat.Chance)
	}
	// Untouched keys keep their defaults.
	if cfg.Round.BurstCount != 40 || cfg.Physics.Gravity != 0.5 {
		t.Errorf("defaults lost: burst=%d gravity=%f", cfg.Round.BurstCount, cfg.Physics.Gravity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TossConfig)
		wantErr string
	}{
		{"defaults", func(*TossConfig) {}, ""},
		{"zero world", func(c *TossConfig) { c.World.Width = 0 }, "world size"},
		{"ground outside", func(c *TossConfig) { c.Physics.GroundMargin = 700 }, "ground_margin"},
		{"no wait", func(c *TossConfig) { c.Round.WaitTicks = 0 }, "wait_ticks"},
		{"forces swapped", func(c *TossConfig) { c.Cat.MinForce = 20 }, "max_force"},
		{"negative weight", func(c *TossConfig) { c.Weights.Snack = -1 }, "weights"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTossConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestWeightsTotal(t *testing.T) {
	if got := DefaultTossConfig().Weights.Total(); got != 100 {
		t.Errorf("Total() = %f, expected 100", got)
	}
}
