package config

import "io/fs"

// Config is the complete stash configuration
type Config struct {
	Package      PackageConfig      `koanf:"package"`
	Requirements RequirementsConfig `koanf:"requirements"`
	Artifacts    ArtifactsConfig    `koanf:"artifacts"`
}

// PackageConfig holds the package descriptor metadata
type PackageConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Author      string `koanf:"author"`
	AuthorEmail string `koanf:"author_email"`
}

// RequirementsConfig locates and filters the dependency list
type RequirementsConfig struct {
	File           string `koanf:"file"`
	EditableMarker string `koanf:"editable_marker"`
}

// ArtifactsConfig controls where and how artifacts are written
type ArtifactsConfig struct {
	Dir      string      `koanf:"dir"`
	Codec    string      `koanf:"codec"`
	DirPerm  fs.FileMode `koanf:"dir_perm"`
	FilePerm fs.FileMode `koanf:"file_perm"`
}

// Default returns the configuration described by the embedded defaults file
func Default() *Config {
	return &Config{
		Package: PackageConfig{
			Version: "0.1.0",
		},
		Requirements: RequirementsConfig{
			File:           "requirements.txt",
			EditableMarker: "-e .",
		},
		Artifacts: ArtifactsConfig{
			Dir:      "artifacts",
			Codec:    "json",
			DirPerm:  0755,
			FilePerm: 0644,
		},
	}
}
