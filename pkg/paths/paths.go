package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/types"
)

// Environment variable names
const (
	// EnvProjectRoot is the primary environment variable for the project location
	EnvProjectRoot = "STASH_ROOT"

	// EnvConfigDir overrides the XDG config directory for stash
	EnvConfigDir = "STASH_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for stash
	EnvDataDir = "STASH_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for stash
	EnvStateDir = "STASH_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names. User-configurable locations belong in pkg/config.
const (
	// AppDirName is the directory name used under each XDG base dir
	AppDirName = "stash"

	// ProjectConfigFile is the per-project configuration file
	ProjectConfigFile = "stash.toml"

	// UserConfigFile is the user configuration file under ConfigDir
	UserConfigFile = "config.toml"

	// UserConfigYAMLFile is accepted in place of UserConfigFile
	UserConfigYAMLFile = "config.yaml"

	// LogFileName is the name of the log file
	LogFileName = "stash.log"
)

// Paths provides centralized path management for stash
type Paths interface {
	types.Pather
	UsedFallback() bool
	ProjectConfigPath() string
	UserConfigPaths() []string
	LogFilePath() string
	Resolve(path string) string
}

type paths struct {
	projectRoot string
	xdgConfig   string
	xdgData     string
	xdgState    string

	// usedFallback indicates if we fell back to cwd
	usedFallback bool
}

// New creates a new Paths instance with the given project root.
// If projectRoot is empty, it is determined from the environment,
// the enclosing git repository or the current directory, in that order.
func New(projectRoot string) (Paths, error) {
	p := &paths{}

	if projectRoot == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		p.projectRoot = root
		p.usedFallback = usedFallback
	} else {
		p.projectRoot = expandHome(projectRoot)
	}

	absRoot, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	p.xdgConfig = dirFromEnv(EnvConfigDir, xdg.ConfigHome)
	p.xdgData = dirFromEnv(EnvDataDir, xdg.DataHome)
	p.xdgState = dirFromEnv(EnvStateDir, xdg.StateHome)
}

func dirFromEnv(envName, base string) string {
	if dir := os.Getenv(envName); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(base, AppDirName)
}

// findProjectRoot determines the project root using the following priority:
// 1. STASH_ROOT environment variable
// 2. Git repository root
// 3. Current working directory (fallback)
func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return expandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

func (p *paths) ProjectRoot() string { return p.projectRoot }

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool { return p.usedFallback }

func (p *paths) ConfigDir() string { return p.xdgConfig }

func (p *paths) DataDir() string { return p.xdgData }

func (p *paths) StateDir() string { return p.xdgState }

// ProjectConfigPath returns the path of the project's stash.toml
func (p *paths) ProjectConfigPath() string {
	return filepath.Join(p.projectRoot, ProjectConfigFile)
}

// UserConfigPaths returns candidate user config files in lookup order
func (p *paths) UserConfigPaths() []string {
	return []string{
		filepath.Join(p.xdgConfig, UserConfigFile),
		filepath.Join(p.xdgConfig, UserConfigYAMLFile),
	}
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// Resolve expands ~ and makes relative paths relative to the project root
func (p *paths) Resolve(path string) string {
	expanded := expandHome(path)
	if expanded == "" || filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(p.projectRoot, expanded)
}
