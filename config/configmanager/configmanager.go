package configmanager

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coreos/go-semver/semver"
	"github.com/volkovasystems/celene/config"
	"gopkg.in/yaml.v3"
)

// Save saves the config.
func Save(c config.Config) error {
	return SaveToFile(c, config.File())
}

// SaveToFile saves configuration to file.
func SaveToFile(c config.Config, file string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := os.WriteFile(file, b, 0644); err != nil {
		return fmt.Errorf("error writing yaml file: %w", err)
	}
	return nil
}

// LoadFrom loads config from file.
// Unset fields take their default values.
func LoadFrom(file string) (config.Config, error) {
	c := config.Default()
	b, err := os.ReadFile(file)
	if err != nil {
		return c, fmt.Errorf("could not load config from file: %w", err)
	}

	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("could not load config from file: %w", err)
	}

	if err := ValidateConfig(c); err != nil {
		return c, fmt.Errorf("invalid config file '%s': %w", file, err)
	}

	return c, nil
}

// Load loads the config.
// Error is only returned if the config file exists but could not be loaded.
// No error is returned if the config file does not exist.
func Load() (config.Config, error) {
	f := config.File()
	if _, err := os.Stat(f); err != nil {
		return config.Default(), nil
	}

	return LoadFrom(f)
}

// ValidateConfig validates config before we use it
func ValidateConfig(c config.Config) error {
	validModes := map[string]bool{config.ModeSync: true, config.ModeAsync: true}
	if _, ok := validModes[c.Mode]; !ok {
		return fmt.Errorf("invalid mode: '%s'", c.Mode)
	}

	if c.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("invalid version '%s': %w", c.Version, err)
	}
	supported := semver.New(config.SchemaVersion)
	if v.Major != supported.Major {
		return fmt.Errorf("unsupported config version '%s', expected %d.x", c.Version, supported.Major)
	}
	if supported.LessThan(*v) {
		return fmt.Errorf("config version '%s' is newer than supported version '%s'", c.Version, supported)
	}

	return nil
}
