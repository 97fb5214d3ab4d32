package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		projectRoot string
		envSetup    map[string]string
		validate    func(t *testing.T, p Paths)
	}{
		{
			name:        "explicit project root",
			projectRoot: "/tmp/project",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/tmp/project", p.ProjectRoot())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name: "from STASH_ROOT env",
			envSetup: map[string]string{
				EnvProjectRoot: "/env/project",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/env/project", p.ProjectRoot())
			},
		},
		{
			name: "git repository or fallback",
			validate: func(t *testing.T, p Paths) {
				assert.NotEmpty(t, p.ProjectRoot())
				assert.True(t, filepath.IsAbs(p.ProjectRoot()), "Path should be absolute")
			},
		},
		{
			name:        "expand tilde in explicit path",
			projectRoot: "~/my-project",
			validate: func(t *testing.T, p Paths) {
				homeDir, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(homeDir, "my-project"), p.ProjectRoot())
			},
		},
		{
			name:        "custom XDG directories",
			projectRoot: "/tmp/project",
			envSetup: map[string]string{
				EnvDataDir:   "/custom/data",
				EnvConfigDir: "/custom/config",
				EnvStateDir:  "/custom/state",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/data", p.DataDir())
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/state", p.StateDir())
				assert.Equal(t, "/custom/state/stash.log", p.LogFilePath())
			},
		},
		{
			name:        "default XDG directories end in app dir",
			projectRoot: "/tmp/project",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, AppDirName, filepath.Base(p.ConfigDir()))
				assert.Equal(t, AppDirName, filepath.Base(p.DataDir()))
				assert.Equal(t, AppDirName, filepath.Base(p.StateDir()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvProjectRoot, "")
			t.Setenv(EnvDataDir, "")
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvStateDir, "")

			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.projectRoot)
			require.NoError(t, err)
			require.NotNil(t, p)

			tt.validate(t, p)
		})
	}
}

func TestConfigPaths(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")

	p, err := New("/test/project")
	require.NoError(t, err)

	assert.Equal(t, "/test/project/stash.toml", p.ProjectConfigPath())
	assert.Equal(t, []string{
		"/custom/config/config.toml",
		"/custom/config/config.yaml",
	}, p.UserConfigPaths())
}

func TestResolve(t *testing.T) {
	p, err := New("/test/project")
	require.NoError(t, err)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "relative", input: "artifacts/model.pkl", expected: "/test/project/artifacts/model.pkl"},
		{name: "absolute", input: "/var/models/a.json", expected: "/var/models/a.json"},
		{name: "home", input: "~/models/a.json", expected: filepath.Join(homeDir, "models/a.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.Resolve(tt.input))
		})
	}
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "just tilde", input: "~", expected: homeDir},
		{name: "tilde with path", input: "~/documents", expected: filepath.Join(homeDir, "documents")},
		{name: "other user home", input: "~other/documents", expected: "~other/documents"},
		{name: "absolute path", input: "/usr/local/bin", expected: "/usr/local/bin"},
		{name: "relative path", input: "relative/path", expected: "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.input))
		})
	}
}
