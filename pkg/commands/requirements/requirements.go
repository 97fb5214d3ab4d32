package requirements

import (
	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/manifest"
	reqfile "github.com/arthur-debert/stash/pkg/requirements"
	"github.com/arthur-debert/stash/pkg/types"
)

// ListRequirementsOptions defines the options for the ListRequirements command.
type ListRequirementsOptions struct {
	FS     types.FS
	Paths  types.Pather
	Config *config.Config

	// File overrides requirements.file when set. Relative paths are
	// resolved against the project root.
	File string
}

// ListRequirements loads the dependency list without the editable marker.
// Filesystem errors are returned unmodified.
func ListRequirements(opts ListRequirementsOptions) (*types.RequirementsResult, error) {
	log := logging.GetLogger("commands.requirements")
	log.Debug().Str("command", "ListRequirements").Msg("Executing command")

	cfg := *opts.Config
	if opts.File != "" {
		cfg.Requirements.File = opts.File
	}
	path := manifest.RequirementsPath(&cfg, opts.Paths)

	reqs, err := reqfile.LoadWithMarker(opts.FS, path, cfg.Requirements.EditableMarker)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ListRequirements").Str("file", path).Int("count", len(reqs)).Msg("Command finished")
	return &types.RequirementsResult{File: path, Requirements: reqs}, nil
}
