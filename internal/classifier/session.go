// Package classifier rewrites the editor's argument vector, turning path
// arguments inside dev-container projects into vscode-remote URIs.
package classifier

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Cyclone1070/cope/internal/devcontainer"
	"github.com/Cyclone1070/cope/internal/pathutil"
	"github.com/Cyclone1070/cope/internal/resolver"
)

// FileSystem is what path candidate handling needs from the filesystem.
type FileSystem interface {
	IsDir(path string) bool
}

// Resolver resolves a marker directory to container properties.
type Resolver interface {
	Resolve(markerDir string) (*resolver.Properties, error)
}

// Options configures a Session.
type Options struct {
	// Editor becomes argument 0 of the rewritten vector.
	Editor string
	// Getwd returns the working directory relative paths are resolved
	// against. It is called at most once, on the first relative path.
	Getwd func() (string, error)
	// ResolveAfterSentinel keeps rewriting path candidates after a
	// terminal sentinel instead of passing everything through.
	ResolveAfterSentinel bool
	// SearchFromParent starts the marker search at a candidate's parent.
	SearchFromParent bool
}

// Session holds the state for one rewrite run: working directory,
// filesystem, and the resolver with its per-marker cache. Build one at
// startup and use it for the whole argument vector.
type Session struct {
	opts     Options
	fs       FileSystem
	resolver Resolver
	logger   *slog.Logger

	cwd    string
	cwdErr error
	cwdSet bool
}

// NewSession creates a Session.
func NewSession(opts Options, fs FileSystem, r Resolver, logger *slog.Logger) *Session {
	return &Session{opts: opts, fs: fs, resolver: r, logger: logger}
}

// rewritePath converts a path candidate into a --file-uri or --folder-uri
// argument when it lives under a dev-container project; otherwise it
// returns arg unchanged.
func (s *Session) rewritePath(arg string) (string, error) {
	var cwd string
	if !pathutil.IsAbs(arg) {
		var err error
		if cwd, err = s.workingDir(); err != nil {
			return "", err
		}
	}
	pth := pathutil.Normalize(arg, cwd)

	marker, ok := pathutil.FindDirUp(s.fs, pth, pathutil.FindOptions{
		Dir:        devcontainer.MarkerDir,
		Stop:       devcontainer.StopDir,
		FromParent: s.opts.SearchFromParent,
	})
	if !ok {
		return arg, nil
	}

	props, err := s.resolver.Resolve(marker)
	if err != nil {
		return "", err
	}
	if props == nil {
		// .devcontainer/ without any devcontainer.json
		return arg, nil
	}

	rel, err := pathutil.Rel(props.Root, pth)
	if err != nil {
		return "", err
	}

	kind := "file"
	if s.fs.IsDir(pth) {
		kind = "folder"
	}
	return fmt.Sprintf("--%s-uri=vscode-remote://dev-container+%s%s/%s", kind, props.Hex, props.Folder, rel), nil
}

// workingDir returns the cached working directory, asking Getwd once.
func (s *Session) workingDir() (string, error) {
	if !s.cwdSet {
		s.cwdSet = true
		if s.opts.Getwd == nil {
			s.cwdErr = &WorkingDirError{Cause: ErrNoGetwd}
		} else if cwd, err := s.opts.Getwd(); err != nil {
			s.cwdErr = &WorkingDirError{Cause: err}
		} else {
			s.cwd = cwd
		}
	}
	return s.cwd, s.cwdErr
}

// checkEncodable rejects arguments that cannot be passed to exec.
func checkEncodable(arg string) error {
	if strings.IndexByte(arg, 0) >= 0 {
		return &EncodingError{Arg: arg}
	}
	return nil
}
