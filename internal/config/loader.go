package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "cope"
	// ConfigFile is the config file name
	ConfigFile = "config.json"

	// EnvVerbose enables verbose output when set to any value.
	EnvVerbose = "COPE_VERBOSE"
	// EnvEditor overrides the editor binary when non-empty.
	EnvEditor = "COPE_EDITOR"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs        FileSystem
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a production Loader using the real filesystem and environment
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}, lookupEnv: os.LookupEnv}
}

// NewLoaderWithFS creates a Loader with a custom filesystem and environment (for testing)
func NewLoaderWithFS(fs FileSystem, lookupEnv func(string) (string, bool)) *Loader {
	return &Loader{fs: fs, lookupEnv: lookupEnv}
}

// Load reads configuration from ~/.config/cope/config.json, merges it with
// defaults and applies environment overrides. Dotfile values override
// defaults; environment values override both.
// Returns default config if dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: This implementation unmarshals JSON keys directly over the default configuration.
// This allows explicit zero values (e.g., false, "") in the config file to override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := l.loadFile(cfg); err != nil {
		return nil, err
	}
	ApplyEnv(cfg, l.lookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) loadFile(cfg *Config) error {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return nil // Use defaults if can't get home dir
	}

	configPath := filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &LoadError{Path: configPath, Cause: err}
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return &LoadError{Path: configPath, Cause: err}
	}
	return nil
}

// ApplyEnv overlays the COPE_* environment variables onto cfg.
func ApplyEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	if _, ok := lookupEnv(EnvVerbose); ok {
		cfg.Verbose = true
	}
	if editor, ok := lookupEnv(EnvEditor); ok && editor != "" {
		cfg.Editor = editor
	}
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
