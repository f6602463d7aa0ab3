package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "trashtoss.yaml"

// Load loads the trash toss configuration.
// Search order: customPath -> ~/.trashtoss/configs/trashtoss.yaml ->
// ./configs/trashtoss.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it
// wants to change.
func Load(customPath string) (TossConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTossConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultTossConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTossYAML)
	if err != nil {
		return DefaultTossConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates it.
func Parse(data []byte) (TossConfig, error) {
	cfg := DefaultTossConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c TossConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.Physics.GroundMargin < 0 || c.Physics.GroundMargin >= c.World.Height {
		errs = append(errs, errors.New("ground_margin must be inside the world"))
	}
	if c.Round.WaitTicks <= 0 {
		errs = append(errs, errors.New("wait_ticks must be positive"))
	}
	if c.Cat.ActiveTicks <= 0 {
		errs = append(errs, errors.New("cat active_ticks must be positive"))
	}
	if c.Cat.MaxForce < c.Cat.MinForce {
		errs = append(errs, errors.New("cat max_force must not be below min_force"))
	}
	if c.Weights.Paper < 0 || c.Weights.Snack < 0 || c.Weights.MouseToy < 0 {
		errs = append(errs, errors.New("weights must not be negative"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trashtoss", "configs", filename)
}
