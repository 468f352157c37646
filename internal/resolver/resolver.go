// Package resolver picks one devcontainer configuration per marker directory
// and remembers the choice for the rest of the run.
package resolver

import (
	"fmt"
	"log/slog"

	"github.com/Cyclone1070/cope/internal/devcontainer"
	"github.com/Cyclone1070/cope/internal/pathutil"
)

// Prompt is shown above the candidate list when more than one config exists.
const Prompt = "Which container?"

// Chooser asks the user to pick one of labels and returns its index.
type Chooser interface {
	Choose(prompt string, labels []string) (int, error)
}

// Properties is what a path rewrite needs from a resolved configuration.
type Properties struct {
	// Hex is the hex-encoded container identifier.
	Hex string
	// Folder is the project folder inside the container.
	Folder string
	// Root is the project root on the host (the marker directory's parent).
	Root string
}

// Resolver discovers and chooses configurations. Not safe for concurrent use.
type Resolver struct {
	fs      devcontainer.FileSystem
	chooser Chooser
	logger  *slog.Logger
	cache   map[string]*Properties
}

// New creates a Resolver with an empty cache.
func New(fs devcontainer.FileSystem, chooser Chooser, logger *slog.Logger) *Resolver {
	return &Resolver{
		fs:      fs,
		chooser: chooser,
		logger:  logger,
		cache:   make(map[string]*Properties),
	}
}

// Resolve returns the properties for markerDir, or nil when it holds no
// configuration. Discovery and the chooser run at most once per markerDir.
func (r *Resolver) Resolve(markerDir string) (*Properties, error) {
	if props, ok := r.cache[markerDir]; ok {
		r.logger.Debug("resolution cache hit", "marker", markerDir)
		return props, nil
	}

	props, err := r.resolve(markerDir)
	if err != nil {
		return nil, err
	}
	r.cache[markerDir] = props
	return props, nil
}

func (r *Resolver) resolve(markerDir string) (*Properties, error) {
	records, err := devcontainer.Discover(r.fs, markerDir)
	if err != nil {
		return nil, err
	}

	root, _ := pathutil.Parent(markerDir)

	var chosen devcontainer.Record
	switch len(records) {
	case 0:
		return nil, nil
	case 1:
		chosen = records[0]
	default:
		chosen, err = r.choose(records, root)
		if err != nil {
			return nil, err
		}
	}

	id := devcontainer.ContainerID(root, chosen.Path)
	r.logger.Debug("container identifier", "config", chosen.Path, "id", id)

	return &Properties{
		Hex:    devcontainer.Hex([]byte(id)),
		Folder: devcontainer.WorkspaceFolder(chosen, root),
		Root:   root,
	}, nil
}

func (r *Resolver) choose(records []devcontainer.Record, root string) (devcontainer.Record, error) {
	labels := make([]string, len(records))
	for i, rec := range records {
		rel, err := pathutil.Rel(root, rec.Path)
		if err != nil {
			rel = rec.Path
		}
		labels[i] = fmt.Sprintf("%s (%q)", rec.DisplayName(), rel)
	}

	idx, err := r.chooser.Choose(Prompt, labels)
	if err != nil {
		return devcontainer.Record{}, &SelectionError{Cause: err}
	}
	if idx < 0 || idx >= len(records) {
		return devcontainer.Record{}, &SelectionError{Cause: fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)}
	}
	return records[idx], nil
}
