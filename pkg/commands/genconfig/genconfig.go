package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/paths"
	"github.com/arthur-debert/stash/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	FS    types.FS
	Paths types.Pather
	Write bool
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()

	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := filepath.Join(opts.Paths.ProjectRoot(), paths.ProjectConfigFile)

	if _, err := opts.FS.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := opts.FS.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", filepath.Dir(targetPath))
	}

	if err := opts.FS.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
