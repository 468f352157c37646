// Package devcontainer reads devcontainer.json files and builds the
// container identifier used by the Dev Containers URI scheme.
package devcontainer

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/jsonc"
)

const (
	// MarkerDir is the directory that marks a dev-container project root.
	MarkerDir = ".devcontainer"
	// ConfigFile is the configuration file looked for inside MarkerDir.
	ConfigFile = "devcontainer.json"
	// StopDir aborts the marker search when found first.
	StopDir = ".git"
)

// Record is the subset of a devcontainer.json that the rewriter uses.
type Record struct {
	Name            string `mapstructure:"name"`
	WorkspaceFolder string `mapstructure:"workspaceFolder"`

	// Path is the file the record was read from.
	Path string `mapstructure:"-"`
}

// Parse decodes devcontainer.json content. Comments and trailing commas are
// accepted; unknown keys are ignored.
func Parse(path string, data []byte) (Record, error) {
	var doc map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return Record{}, &ParseError{Path: path, Cause: err}
	}
	if doc == nil {
		return Record{}, &ParseError{Path: path, Cause: ErrNotAnObject}
	}

	var rec Record
	if err := mapstructure.Decode(doc, &rec); err != nil {
		return Record{}, &ParseError{Path: path, Cause: err}
	}
	rec.Path = path
	return rec, nil
}

// DisplayName returns the declared name or a placeholder.
func (r Record) DisplayName() string {
	if r.Name == "" {
		return "<no name>"
	}
	return r.Name
}
