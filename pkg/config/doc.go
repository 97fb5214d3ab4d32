// Package config handles configuration management for stash.
//
// Configuration is layered with koanf: embedded defaults, the user config
// file, the project's stash.toml, STASH_* environment variables and finally
// explicit overrides (usually command-line flags). Later layers win.
package config
