package put

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stash/pkg/commands/internal"
	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/types"
	"gopkg.in/yaml.v3"
)

// StdinSource as Source reads the data from Input
const StdinSource = "-"

// Data formats accepted as input
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// PutArtifactOptions defines the options for the PutArtifact command.
type PutArtifactOptions struct {
	FS     types.FS
	Paths  types.Pather
	Config *config.Config

	// Artifact is the destination, absolute or relative to the artifacts dir.
	Artifact string
	// Source is the data file to store, or StdinSource.
	Source string
	// Input is read when Source is StdinSource.
	Input io.Reader
	// SourceFormat forces the input format. Empty picks it from the
	// Source extension, defaulting to json.
	SourceFormat string
}

// PutArtifact decodes a JSON or YAML document and saves it as an artifact.
func PutArtifact(opts PutArtifactOptions) (*types.PutResult, error) {
	log := logging.GetLogger("commands.put")
	log.Debug().Str("command", "PutArtifact").Str("source", opts.Source).Msg("Executing command")

	if opts.Artifact == "" {
		return nil, errors.New(errors.ErrInvalidInput, "artifact path is required")
	}

	data, err := readSource(opts)
	if err != nil {
		return nil, err
	}

	format := sourceFormat(opts.Source, opts.SourceFormat)
	value, err := decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to parse %s as %s", opts.Source, format).
			WithDetail("source", opts.Source)
	}

	store := internal.NewStore(opts.FS, opts.Config)
	path := internal.ResolveArtifact(opts.Config, opts.Paths, opts.Artifact)
	done := logging.LogOperationStart(log, "save")
	defer done()
	if err := store.SaveObject(path, value); err != nil {
		return nil, err
	}

	info, err := store.Info(path)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "PutArtifact").Str("path", path).Str("codec", info.Codec).Msg("Command finished")
	return &types.PutResult{Artifact: info, Source: opts.Source}, nil
}

func readSource(opts PutArtifactOptions) ([]byte, error) {
	switch opts.Source {
	case "":
		return nil, errors.New(errors.ErrInvalidInput, "source is required")
	case StdinSource:
		if opts.Input == nil {
			return nil, errors.New(errors.ErrInvalidInput, "no input to read from")
		}
		data, err := io.ReadAll(opts.Input)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read input")
		}
		return data, nil
	}

	data, err := opts.FS.ReadFile(opts.Source)
	if err != nil {
		code := errors.ErrFileAccess
		if _, statErr := opts.FS.Stat(opts.Source); statErr != nil {
			code = errors.ErrFileNotFound
		}
		return nil, errors.Wrapf(err, code, "failed to read %s", opts.Source).
			WithDetail("source", opts.Source)
	}
	return data, nil
}

func sourceFormat(source, forced string) string {
	if forced != "" {
		return strings.ToLower(forced)
	}
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func decode(data []byte, format string) (interface{}, error) {
	var value interface{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown data format %q", format)
	}
	return value, nil
}
