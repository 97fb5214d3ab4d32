// Package manifest assembles the package descriptor: the project's metadata
// from configuration plus its filtered dependency list.
package manifest

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/requirements"
	"github.com/arthur-debert/stash/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the supported output formats
var Formats = []string{FormatTOML, FormatYAML, FormatJSON}

// Manifest is the package descriptor
type Manifest struct {
	Name            string   `json:"name" toml:"name" yaml:"name"`
	Version         string   `json:"version" toml:"version" yaml:"version"`
	Author          string   `json:"author,omitempty" toml:"author,omitempty" yaml:"author,omitempty"`
	AuthorEmail     string   `json:"author_email,omitempty" toml:"author_email,omitempty" yaml:"author_email,omitempty"`
	InstallRequires []string `json:"install_requires" toml:"install_requires" yaml:"install_requires"`
}

// Build reads the requirements file named by cfg, relative to the project
// root, and combines it with the package metadata. Errors reading the
// requirements file are returned unmodified.
func Build(fs types.FS, cfg *config.Config, p types.Pather) (*Manifest, error) {
	reqPath := RequirementsPath(cfg, p)
	reqs, err := requirements.LoadWithMarker(fs, reqPath, cfg.Requirements.EditableMarker)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		Name:            cfg.Package.Name,
		Version:         cfg.Package.Version,
		Author:          cfg.Package.Author,
		AuthorEmail:     cfg.Package.AuthorEmail,
		InstallRequires: reqs,
	}, nil
}

// RequirementsPath returns the configured requirements file, resolved
// against the project root
func RequirementsPath(cfg *config.Config, p types.Pather) string {
	file := cfg.Requirements.File
	if file == "" {
		file = requirements.DefaultFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(p.ProjectRoot(), file)
}

// Render serializes m in the given format
func Render(m *Manifest, format string) (string, error) {
	out := *m
	if out.InstallRequires == nil {
		out.InstallRequires = []string{}
	}

	switch strings.ToLower(format) {
	case FormatTOML:
		data, err := toml.Marshal(out)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrSerialize, "failed to render manifest as toml")
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(out)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrSerialize, "failed to render manifest as yaml")
		}
		return string(data), nil
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return "", errors.Wrap(err, errors.ErrSerialize, "failed to render manifest as json")
		}
		return buf.String(), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown manifest format %q", format).
			WithDetail("formats", Formats)
	}
}
