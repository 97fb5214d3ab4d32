// Package internal holds helpers shared by the artifact commands.
package internal

import (
	"path/filepath"

	"github.com/arthur-debert/stash/pkg/artifact"
	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/paths"
	"github.com/arthur-debert/stash/pkg/types"
)

// NewStore returns an artifact store on fs configured from cfg.Artifacts
func NewStore(fs types.FS, cfg *config.Config) *artifact.Store {
	return artifact.NewStore(artifact.Options{
		FS:           fs,
		DefaultCodec: cfg.Artifacts.Codec,
		DirPerm:      cfg.Artifacts.DirPerm,
		FilePerm:     cfg.Artifacts.FilePerm,
	})
}

// ArtifactsDir returns the configured artifacts directory, resolved
// against the project root
func ArtifactsDir(cfg *config.Config, p types.Pather) string {
	return resolve(p.ProjectRoot(), cfg.Artifacts.Dir)
}

// ResolveArtifact maps an artifact name given on the command line to a
// path. Absolute paths are kept; relative ones live under the artifacts
// directory.
func ResolveArtifact(cfg *config.Config, p types.Pather, name string) string {
	return resolve(ArtifactsDir(cfg, p), name)
}

func resolve(base, path string) string {
	path = paths.ExpandHome(path)
	if path == "" {
		return base
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
