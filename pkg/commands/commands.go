// Package commands provides high-level command implementations for stash.
//
// Each command is implemented in its own subdirectory:
//   - requirements/ - ListRequirements command
//   - manifest/     - GenerateManifest command
//   - put/          - PutArtifact command
//   - get/          - GetArtifact command
//   - inspect/      - InspectArtifact command
//   - list/         - ListArtifacts command
//   - genconfig/    - GenConfig command
//   - internal/     - Artifact store and path helpers
//
// This file re-exports all command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/stash/pkg/commands/genconfig"
	"github.com/arthur-debert/stash/pkg/commands/get"
	"github.com/arthur-debert/stash/pkg/commands/inspect"
	"github.com/arthur-debert/stash/pkg/commands/list"
	"github.com/arthur-debert/stash/pkg/commands/manifest"
	"github.com/arthur-debert/stash/pkg/commands/put"
	"github.com/arthur-debert/stash/pkg/commands/requirements"
	"github.com/arthur-debert/stash/pkg/types"
)

// ListRequirements loads the dependency list without the editable marker.
type ListRequirementsOptions = requirements.ListRequirementsOptions

func ListRequirements(opts ListRequirementsOptions) (*types.RequirementsResult, error) {
	return requirements.ListRequirements(opts)
}

// GenerateManifest renders the package descriptor.
type GenerateManifestOptions = manifest.GenerateManifestOptions

func GenerateManifest(opts GenerateManifestOptions) (*types.ManifestResult, error) {
	return manifest.GenerateManifest(opts)
}

// PutArtifact stores a JSON or YAML document as an artifact.
type PutArtifactOptions = put.PutArtifactOptions

func PutArtifact(opts PutArtifactOptions) (*types.PutResult, error) {
	return put.PutArtifact(opts)
}

// GetArtifact renders the payload of an artifact.
type GetArtifactOptions = get.GetArtifactOptions

func GetArtifact(opts GetArtifactOptions) (*types.GetResult, error) {
	return get.GetArtifact(opts)
}

// InspectArtifact reads the header of an artifact.
type InspectArtifactOptions = inspect.InspectArtifactOptions

func InspectArtifact(opts InspectArtifactOptions) (*types.ArtifactInfo, error) {
	return inspect.InspectArtifact(opts)
}

// ListArtifacts lists the artifacts under a directory.
type ListArtifactsOptions = list.ListArtifactsOptions

func ListArtifacts(opts ListArtifactsOptions) (*types.ListArtifactsResult, error) {
	return list.ListArtifacts(opts)
}

// GenConfig outputs or writes the default configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
