package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Cyclone1070/cope/internal/config"
	"github.com/Cyclone1070/cope/internal/devcontainer"
	"github.com/Cyclone1070/cope/internal/fsutil/fstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLauncher records the exec call instead of replacing the process.
type MockLauncher struct {
	Args  []string
	Env   []string
	Calls int
	Err   error
}

func (m *MockLauncher) Exec(args []string, env []string) error {
	m.Calls++
	m.Args = args
	m.Env = env
	return m.Err
}

// MockChooser always picks Index.
type MockChooser struct {
	Index int
	Err   error
}

func (m *MockChooser) Choose(prompt string, labels []string) (int, error) {
	return m.Index, m.Err
}

func newDeps(t *testing.T) (Dependencies, *MockLauncher, *bytes.Buffer) {
	t.Helper()
	return newDepsWith(t, nil)
}

// newDepsWith builds the /proj fixture, then writes files over it.
func newDepsWith(t *testing.T, files map[string]string) (Dependencies, *MockLauncher, *bytes.Buffer) {
	t.Helper()
	fs := fstest.New(t).
		File("/proj/.devcontainer/devcontainer.json", `{"name": "proj"}`).
		File("/proj/main.go", "package main").
		Files(files).
		FS

	l := &MockLauncher{}
	stderr := &bytes.Buffer{}
	return Dependencies{
		Config:   config.DefaultConfig(),
		FS:       fs,
		Chooser:  &MockChooser{},
		Launcher: l,
		Getwd:    func() (string, error) { return "/proj", nil },
		Environ:  []string{"HOME=/home/user"},
		Stderr:   stderr,
	}, l, stderr
}

func TestRun_RewritesAndLaunches(t *testing.T) {
	deps, l, stderr := newDeps(t)

	code := run([]string{"cope", "main.go", "--log", "info"}, deps)

	assert.Equal(t, 0, code)
	require.Equal(t, 1, l.Calls)
	hex := devcontainer.Hex([]byte("/proj"))
	assert.Equal(t, []string{
		"code",
		"--file-uri=vscode-remote://dev-container+" + hex + "/workspaces/proj/main.go",
		"--log", "info",
	}, l.Args)
	assert.Equal(t, []string{"HOME=/home/user"}, l.Env)
	assert.Empty(t, stderr.String())
}

func TestRun_VerboseTracesArguments(t *testing.T) {
	deps, _, stderr := newDeps(t)
	deps.Config.Verbose = true

	code := run([]string{"cope", "--version"}, deps)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), `"code" "--version" `+"\n")
}

func TestRun_VerboseLogsContainerID(t *testing.T) {
	deps, _, stderr := newDeps(t)
	deps.Config.Verbose = true

	run([]string{"cope"}, deps)

	assert.Contains(t, stderr.String(), "container identifier")
	assert.Contains(t, stderr.String(), "id=/proj")
}

func TestRun_LaunchFailureExitsNonZero(t *testing.T) {
	deps, l, stderr := newDeps(t)
	l.Err = errors.New("exec format error")

	code := run([]string{"cope"}, deps)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "exec format error")
}

func TestRun_GetwdFailure(t *testing.T) {
	deps, l, stderr := newDeps(t)
	deps.Getwd = func() (string, error) { return "", errors.New("deleted") }

	code := run([]string{"cope"}, deps)

	assert.Equal(t, 1, code)
	assert.Equal(t, 0, l.Calls)
	assert.Contains(t, stderr.String(), "current directory")
}

func TestRun_GetwdFailureIgnoredForAbsolutePaths(t *testing.T) {
	deps, l, stderr := newDeps(t)
	deps.Getwd = func() (string, error) { return "", errors.New("deleted") }

	code := run([]string{"cope", "/proj/main.go", "--version"}, deps)

	assert.Equal(t, 0, code, stderr.String())
	require.Len(t, l.Args, 3)
	assert.True(t, strings.HasPrefix(l.Args[1], "--file-uri="), l.Args[1])
	assert.Equal(t, "--version", l.Args[2])
}

func TestRun_SelectionFailureAborts(t *testing.T) {
	deps, l, stderr := newDepsWith(t, map[string]string{
		"/proj/.devcontainer/alt/devcontainer.json": `{}`,
	})
	deps.Chooser = &MockChooser{Err: errors.New("not a terminal")}

	code := run([]string{"cope", "main.go"}, deps)

	assert.Equal(t, 1, code)
	assert.Equal(t, 0, l.Calls)
	assert.Contains(t, stderr.String(), "selection failed")
}

func TestRun_BadConfigFileAborts(t *testing.T) {
	deps, l, stderr := newDepsWith(t, map[string]string{
		"/proj/.devcontainer/devcontainer.json": `{"name": `,
	})

	code := run([]string{"cope", "main.go"}, deps)

	assert.Equal(t, 1, code)
	assert.Equal(t, 0, l.Calls)
	assert.True(t, strings.HasPrefix(stderr.String(), "cope: error parsing JSON"), stderr.String())
}

func TestRun_ResolveAfterSentinelPolicy(t *testing.T) {
	deps, l, _ := newDeps(t)
	deps.Config.AfterSentinel = config.AfterSentinelResolve
	deps.Config.Editor = "codium"

	code := run([]string{"cope", "--", "main.go"}, deps)

	assert.Equal(t, 0, code)
	require.Len(t, l.Args, 3)
	assert.Equal(t, "codium", l.Args[0])
	assert.Equal(t, "--", l.Args[1])
	assert.True(t, strings.HasPrefix(l.Args[2], "--file-uri="), l.Args[2])
}

func TestLoadConfig_FallbackKeepsEnvironment(t *testing.T) {
	stderr := &bytes.Buffer{}
	env := map[string]string{
		config.EnvVerbose: "1",
		config.EnvEditor:  "codium",
	}
	lookupEnv := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	load := func() (*config.Config, error) { return nil, errors.New("bad config") }

	cfg := loadConfig(load, lookupEnv, stderr)

	assert.Equal(t, "codium", cfg.Editor)
	assert.True(t, cfg.Verbose)
	assert.Contains(t, stderr.String(), "Using default configuration.")
}
