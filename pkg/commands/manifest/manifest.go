package manifest

import (
	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/logging"
	pkgmanifest "github.com/arthur-debert/stash/pkg/manifest"
	"github.com/arthur-debert/stash/pkg/types"
)

// GenerateManifestOptions defines the options for the GenerateManifest command.
type GenerateManifestOptions struct {
	FS     types.FS
	Paths  types.Pather
	Config *config.Config

	// Format is one of toml, yaml or json. Empty selects toml.
	Format string
}

// GenerateManifest builds the package descriptor and renders it.
func GenerateManifest(opts GenerateManifestOptions) (*types.ManifestResult, error) {
	log := logging.GetLogger("commands.manifest")
	log.Debug().Str("command", "GenerateManifest").Msg("Executing command")

	format := opts.Format
	if format == "" {
		format = pkgmanifest.FormatTOML
	}

	m, err := pkgmanifest.Build(opts.FS, opts.Config, opts.Paths)
	if err != nil {
		return nil, err
	}

	content, err := pkgmanifest.Render(m, format)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "GenerateManifest").Str("format", format).
		Int("requirements", len(m.InstallRequires)).Msg("Command finished")
	return &types.ManifestResult{Format: format, Content: content}, nil
}
