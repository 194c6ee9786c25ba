package config

import (
	"os"
	"path/filepath"
)

const appName = "celene"

// SchemaVersion is the version of the config file format understood by this build.
const SchemaVersion = "1.0.0"

// AppName returns the application name.
func AppName() string { return appName }

// versionInfo is the application version info.
type versionInfo struct {
	Version  string
	Revision string
}

// AppVersion returns the application version info.
func AppVersion() versionInfo { return versionInfo{Version: appVersion, Revision: revision} }

var (
	// set via ldflags
	appVersion = "development"
	revision   = "unknown"
)

// Execution modes for ensuring the server.
const (
	ModeSync  = "sync"
	ModeAsync = "async"
)

// Config is the application config.
type Config struct {
	// Version is the config schema version.
	Version string `yaml:"version,omitempty"`

	// Mode is one of sync, async.
	Mode string `yaml:"mode,omitempty"`

	// StartOutput shows the output of the start command on the console.
	StartOutput bool `yaml:"startOutput"`
	// ProbeOutput shows the output of the status probe on the console.
	ProbeOutput bool `yaml:"probeOutput"`
}

// Synchronous returns if the configured mode is blocking.
func (c Config) Synchronous() bool { return c.Mode != ModeAsync }

// Default returns the default configuration.
func Default() Config {
	return Config{
		Version:     SchemaVersion,
		Mode:        ModeSync,
		StartOutput: true,
	}
}

var configFile string

// SetFile overrides the config file location.
func SetFile(file string) { configFile = file }

// File returns the path to the config file.
func File() string {
	if configFile != "" {
		return configFile
	}
	return filepath.Join(Dir(), appName+".yaml")
}

// Dir returns the configuration directory.
// $XDG_CONFIG_HOME is preferred, then the user config directory.
// The directory is not created.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		// no usable home, fall back to the working directory
		return "." + appName
	}
	return filepath.Join(dir, appName)
}
