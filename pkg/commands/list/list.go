package list

import (
	"github.com/arthur-debert/stash/pkg/commands/internal"
	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/types"
)

// ListArtifactsOptions defines the options for the ListArtifacts command.
type ListArtifactsOptions struct {
	FS     types.FS
	Paths  types.Pather
	Config *config.Config

	// Dir is listed instead of the artifacts dir when set. Relative paths
	// are resolved against the artifacts dir.
	Dir string
}

// ListArtifacts finds every artifact under the artifacts directory.
func ListArtifacts(opts ListArtifactsOptions) (*types.ListArtifactsResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListArtifacts").Msg("Executing command")

	dir := internal.ArtifactsDir(opts.Config, opts.Paths)
	if opts.Dir != "" {
		dir = internal.ResolveArtifact(opts.Config, opts.Paths, opts.Dir)
	}

	store := internal.NewStore(opts.FS, opts.Config)
	artifacts, err := store.List(dir)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ListArtifacts").Int("artifactCount", len(artifacts)).Msg("Command finished")
	return &types.ListArtifactsResult{Dir: dir, Artifacts: artifacts}, nil
}
