package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for stash operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Streaming operations
	Open(name string) (io.ReadCloser, error)
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
}

// Pather provides paths for stash operations
type Pather interface {
	// ProjectRoot returns the directory holding the project's stash.toml
	// and requirements file
	ProjectRoot() string

	// ConfigDir returns the XDG config directory for stash
	ConfigDir() string

	// DataDir returns the XDG data directory for stash
	DataDir() string

	// StateDir returns the XDG state directory for stash
	StateDir() string
}
