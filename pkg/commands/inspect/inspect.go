package inspect

import (
	"github.com/arthur-debert/stash/pkg/commands/internal"
	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/types"
)

// InspectArtifactOptions defines the options for the InspectArtifact command.
type InspectArtifactOptions struct {
	FS       types.FS
	Paths    types.Pather
	Config   *config.Config
	Artifact string
}

// InspectArtifact reads the header of an artifact without decoding its payload.
func InspectArtifact(opts InspectArtifactOptions) (*types.ArtifactInfo, error) {
	log := logging.GetLogger("commands.inspect")
	log.Debug().Str("command", "InspectArtifact").Str("artifact", opts.Artifact).Msg("Executing command")

	store := internal.NewStore(opts.FS, opts.Config)
	info, err := store.Info(internal.ResolveArtifact(opts.Config, opts.Paths, opts.Artifact))
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "InspectArtifact").Str("path", info.Path).Msg("Command finished")
	return &info, nil
}
