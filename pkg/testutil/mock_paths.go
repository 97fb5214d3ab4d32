package testutil

import "path/filepath"

// MockPaths is a types.Pather with fixed directories
type MockPaths struct {
	Root   string
	Config string
	Data   string
	State  string
}

// NewMockPaths places the XDG directories under base and the project root
// at base/project
func NewMockPaths(base string) *MockPaths {
	return &MockPaths{
		Root:   filepath.Join(base, "project"),
		Config: filepath.Join(base, "config", "stash"),
		Data:   filepath.Join(base, "data", "stash"),
		State:  filepath.Join(base, "state", "stash"),
	}
}

// ProjectRoot returns the project root
func (m *MockPaths) ProjectRoot() string { return m.Root }

// ConfigDir returns the config directory
func (m *MockPaths) ConfigDir() string { return m.Config }

// DataDir returns the data directory
func (m *MockPaths) DataDir() string { return m.Data }

// StateDir returns the state directory
func (m *MockPaths) StateDir() string { return m.State }
