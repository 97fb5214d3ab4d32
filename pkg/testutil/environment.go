// pkg/testutil/environment.go
// DEPENDENCIES: filesystem, config
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/filesystem"
	"github.com/arthur-debert/stash/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	ProjectRoot string

	FS     types.FS
	Paths  *MockPaths
	Config *config.Config

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. The configuration is
// the built-in default with the package named "demo".
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.Paths = NewMockPaths(t.TempDir())
	default:
		env.FS = filesystem.NewMemory()
		env.Paths = NewMockPaths("/test")
	}
	env.ProjectRoot = env.Paths.Root
	require.NoError(t, env.FS.MkdirAll(env.ProjectRoot, 0755))

	env.Config = config.Default()
	env.Config.Package.Name = "demo"

	return env
}

// Path joins parts onto the project root
func (e *TestEnvironment) Path(parts ...string) string {
	return filepath.Join(append([]string{e.ProjectRoot}, parts...)...)
}

// WriteFile writes content to a path relative to the project root,
// creating parent directories, and returns the absolute path
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()
	path := e.Path(rel)
	require.NoError(e.t, e.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, e.FS.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteRequirements writes the configured requirements file, one entry
// per line
func (e *TestEnvironment) WriteRequirements(lines ...string) string {
	e.t.Helper()
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return e.WriteFile(e.Config.Requirements.File, content)
}

// ReadFile returns the content of a path relative to the project root
func (e *TestEnvironment) ReadFile(rel string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(e.Path(rel))
	require.NoError(e.t, err)
	return string(data)
}

// FileExists reports whether a path relative to the project root exists
func (e *TestEnvironment) FileExists(rel string) bool {
	_, err := e.FS.Stat(e.Path(rel))
	return err == nil
}
