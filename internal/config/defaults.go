package config

// Sentinel policies for arguments following a terminal sentinel.
const (
	// AfterSentinelPassthrough forwards everything after a sentinel unchanged.
	AfterSentinelPassthrough = "passthrough"
	// AfterSentinelResolve still rewrites path candidates after a sentinel.
	AfterSentinelResolve = "resolve"
)

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile
// and then via environment variables.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	// Editor is the binary that replaces this process.
	Editor string `json:"editor"` // Default: "code"

	// AfterSentinel is AfterSentinelPassthrough or AfterSentinelResolve.
	AfterSentinel string `json:"after_sentinel"` // Default: "passthrough"

	// SearchFromParent starts the .devcontainer search at the parent of
	// each path candidate instead of the candidate itself.
	SearchFromParent bool `json:"search_from_parent"` // Default: false

	// Verbose prints the rewritten arguments and debug logs to stderr.
	Verbose bool `json:"verbose"` // Default: false

	Log LogConfig `json:"log"`
}

type LogConfig struct {
	Level  string `json:"level"`  // Default: "info"
	Format string `json:"format"` // Default: "text"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Editor:           "code",
		AfterSentinel:    AfterSentinelPassthrough,
		SearchFromParent: false,
		Verbose:          false,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
