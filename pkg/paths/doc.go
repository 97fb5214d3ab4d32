// Package paths provides centralized path handling for stash.
//
// It resolves the project root (where stash.toml and the requirements file
// live) and the XDG Base Directory locations stash uses for user
// configuration, data and logs.
//
// # Environment Variables
//
//   - STASH_ROOT: project root (default: git repository root, then cwd)
//   - STASH_CONFIG_DIR: override $XDG_CONFIG_HOME/stash
//   - STASH_DATA_DIR: override $XDG_DATA_HOME/stash
//   - STASH_STATE_DIR: override $XDG_STATE_HOME/stash (log file location)
package paths
