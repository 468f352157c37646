// Package main provides the cope command: a drop-in replacement for the
// `code` launcher that opens files inside their dev container.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Cyclone1070/cope/internal/chooser"
	"github.com/Cyclone1070/cope/internal/classifier"
	"github.com/Cyclone1070/cope/internal/config"
	"github.com/Cyclone1070/cope/internal/fsutil"
	"github.com/Cyclone1070/cope/internal/launcher"
	"github.com/Cyclone1070/cope/internal/logging"
	"github.com/Cyclone1070/cope/internal/resolver"
)

// Launcher replaces the current process with the editor.
type Launcher interface {
	Exec(args []string, env []string) error
}

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config   *config.Config
	FS       *fsutil.FileSystem
	Chooser  resolver.Chooser
	Launcher Launcher
	Getwd    func() (string, error)
	Environ  []string
	Stderr   io.Writer
}

func main() {
	// Load configuration (from defaults + ~/.config/cope/config.json + environment)
	cfg := loadConfig(config.Load, os.LookupEnv, os.Stderr)

	deps := Dependencies{
		Config:   cfg,
		FS:       fsutil.NewOSFileSystem(),
		Chooser:  chooser.NewTerminal(),
		Launcher: launcher.New(),
		Getwd:    os.Getwd,
		Environ:  os.Environ(),
		Stderr:   os.Stderr,
	}

	os.Exit(run(os.Args, deps))
}

// loadConfig falls back to the defaults when the config file is unusable.
// The environment still applies to the fallback.
func loadConfig(load func() (*config.Config, error), lookupEnv func(string) (string, bool), stderr io.Writer) *config.Config {
	cfg, err := load()
	if err == nil {
		return cfg
	}
	fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
	fmt.Fprintf(stderr, "Using default configuration.\n")
	cfg = config.DefaultConfig()
	config.ApplyEnv(cfg, lookupEnv)
	return cfg
}

// run rewrites argv and execs the editor. It returns only on failure, with
// the exit status to use.
func run(argv []string, deps Dependencies) int {
	cfg := deps.Config

	level := cfg.Log.Level
	if cfg.Verbose {
		level = "debug"
	}
	logger := logging.New(level, cfg.Log.Format, deps.Stderr)

	res := resolver.New(deps.FS, deps.Chooser, logger)
	session := classifier.NewSession(classifier.Options{
		Editor:               cfg.Editor,
		Getwd:                deps.Getwd,
		ResolveAfterSentinel: cfg.AfterSentinel == config.AfterSentinelResolve,
		SearchFromParent:     cfg.SearchFromParent,
	}, deps.FS, res, logger)

	args, err := session.Rewrite(argv)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "cope: %v\n", err)
		return 1
	}

	if cfg.Verbose {
		launcher.Trace(deps.Stderr, args)
	}

	// Exec rather than fork so stdin, stdout and the pty stay with the editor.
	if err := deps.Launcher.Exec(args, deps.Environ); err != nil {
		fmt.Fprintf(deps.Stderr, "cope: %v\n", err)
		return 1
	}
	return 0
}
