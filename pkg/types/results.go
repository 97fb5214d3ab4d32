package types

import "time"

// RequirementsResult holds the result of the 'requirements' command.
type RequirementsResult struct {
	File         string   `json:"file"`
	Requirements []string `json:"requirements"`
}

// ManifestResult holds the rendered package manifest.
type ManifestResult struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

// ArtifactInfo describes one artifact file on disk.
type ArtifactInfo struct {
	Path      string    `json:"path"`
	Codec     string    `json:"codec"`
	Kind      string    `json:"kind"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	Size      int64     `json:"size"`
}

// PutResult holds the result of the 'put' command.
type PutResult struct {
	Artifact ArtifactInfo `json:"artifact"`
	Source   string       `json:"source"`
}

// GetResult holds the result of the 'get' command.
type GetResult struct {
	Artifact ArtifactInfo `json:"artifact"`
	Format   string       `json:"format"`
	Content  string       `json:"content"`
}

// ListArtifactsResult holds the result of the 'ls' command.
type ListArtifactsResult struct {
	Dir       string         `json:"dir"`
	Artifacts []ArtifactInfo `json:"artifacts"`
}

// GenConfigResult holds the result of the 'gen-config' command.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}
