package devcontainer

import (
	"errors"
	"testing"

	"github.com/Cyclone1070/cope/internal/fsutil"
	"github.com/Cyclone1070/cope/internal/fsutil/fstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) *fsutil.FileSystem {
	t.Helper()
	return fstest.New(t).Files(files).FS
}

func TestDiscover_SingleDefault(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/p/.devcontainer/devcontainer.json": `{"name": "only"}`,
	})

	records, err := Discover(fs, "/p/.devcontainer")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "only", records[0].Name)
	assert.Equal(t, "/p/.devcontainer/devcontainer.json", records[0].Path)
}

func TestDiscover_OneLevelOfSubdirectories(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/p/.devcontainer/devcontainer.json":            `{"name": "root"}`,
		"/p/.devcontainer/beta/devcontainer.json":       `{"name": "beta"}`,
		"/p/.devcontainer/alpha/devcontainer.json":      `{"name": "alpha"}`,
		"/p/.devcontainer/alpha/deep/devcontainer.json": `{"name": "too deep"}`,
		"/p/.devcontainer/gamma/other.json":             `{}`,
	})

	records, err := Discover(fs, "/p/.devcontainer")

	require.NoError(t, err)
	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"root", "alpha", "beta"}, names)
}

func TestDiscover_MissingMarkerYieldsNothing(t *testing.T) {
	fs := writeFiles(t, map[string]string{"/p/README.md": "hi"})

	records, err := Discover(fs, "/p/.devcontainer")
	require.NoError(t, err)
	assert.Empty(t, records)

	// A file named like the marker is not a marker directory.
	records, err = Discover(fs, "/p/README.md")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDiscover_EmptyMarker(t *testing.T) {
	fs := fstest.New(t).Dir("/p/.devcontainer/sub").FS

	records, err := Discover(fs, "/p/.devcontainer")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDiscover_ParseFailureIsFatal(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/p/.devcontainer/devcontainer.json":     `{"name": "ok"}`,
		"/p/.devcontainer/bad/devcontainer.json": `{ not json`,
	})

	records, err := Discover(fs, "/p/.devcontainer")

	assert.Nil(t, records)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "/p/.devcontainer/bad/devcontainer.json", parseErr.Path)
}

type failingReadFS struct {
	*fsutil.FileSystem
}

func (f failingReadFS) ReadFile(path string) ([]byte, error) {
	return nil, errors.New("permission denied")
}

func TestDiscover_ReadFailureIsFatal(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/p/.devcontainer/devcontainer.json": `{}`,
	})

	_, err := Discover(failingReadFS{fs}, "/p/.devcontainer")

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "/p/.devcontainer/devcontainer.json", readErr.Path)
}
