package get

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/arthur-debert/stash/pkg/commands/internal"
	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/types"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// GetArtifactOptions defines the options for the GetArtifact command.
type GetArtifactOptions struct {
	FS     types.FS
	Paths  types.Pather
	Config *config.Config

	// Artifact is absolute or relative to the artifacts dir.
	Artifact string
	// Format is json or yaml. Empty selects json.
	Format string
}

// GetArtifact loads an artifact as generic data and renders it.
func GetArtifact(opts GetArtifactOptions) (*types.GetResult, error) {
	log := logging.GetLogger("commands.get")
	log.Debug().Str("command", "GetArtifact").Str("artifact", opts.Artifact).Msg("Executing command")

	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatYAML {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", opts.Format).
			WithDetail("formats", []string{FormatJSON, FormatYAML})
	}

	store := internal.NewStore(opts.FS, opts.Config)
	path := internal.ResolveArtifact(opts.Config, opts.Paths, opts.Artifact)
	done := logging.LogOperationStart(log, "load")
	defer done()

	info, err := store.Info(path)
	if err != nil {
		return nil, err
	}

	target := targetFor(info.Kind)
	if _, err := store.LoadObject(path, target); err != nil {
		return nil, err
	}

	content, err := render(derefTarget(target), format)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "GetArtifact").Str("path", path).Str("kind", info.Kind).Msg("Command finished")
	return &types.GetResult{Artifact: info, Format: format, Content: content}, nil
}

// targetFor picks a decode target for a stored kind. gob refuses to decode
// a concrete value into an empty interface, so the generic kinds produced
// by put get matching concrete targets.
func targetFor(kind string) interface{} {
	switch kind {
	case "map[string]interface {}":
		return &map[string]interface{}{}
	case "[]interface {}":
		return &[]interface{}{}
	case "string":
		return new(string)
	case "float64":
		return new(float64)
	case "int":
		return new(int)
	case "bool":
		return new(bool)
	default:
		return new(interface{})
	}
}

func derefTarget(target interface{}) interface{} {
	switch v := target.(type) {
	case *map[string]interface{}:
		return *v
	case *[]interface{}:
		return *v
	case *string:
		return *v
	case *float64:
		return *v
	case *int:
		return *v
	case *bool:
		return *v
	case *interface{}:
		return *v
	default:
		return target
	}
}

func render(value interface{}, format string) (string, error) {
	if format == FormatYAML {
		data, err := yaml.Marshal(value)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrSerialize, "failed to render artifact as yaml")
		}
		return string(data), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return "", errors.Wrap(err, errors.ErrSerialize, "failed to render artifact as json")
	}
	return buf.String(), nil
}
