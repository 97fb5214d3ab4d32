package stash

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Load project requirements and persist artifacts"
	MsgRequirementsShort = "Print the dependency list without the editable install line"
	MsgManifestShort     = "Render the package manifest"
	MsgPutShort          = "Store a JSON or YAML document as an artifact"
	MsgGetShort          = "Print the value stored in an artifact"
	MsgInspectShort      = "Show the header of an artifact"
	MsgLsShort           = "List artifacts"
	MsgVersionShort      = "Print version information"
	MsgCompletionShort   = "Generate shell completion script"
	MsgCompletionLong    = "Generate the autocompletion script for stash for the specified shell."

	// Status messages
	MsgNoRequirements   = "No requirements found in %s\n"
	MsgArtifactSaved    = "Saved %s (%s, %s)\n"
	MsgNoArtifacts      = "No artifacts found in %s\n"
	MsgArtifactLine     = "%s\t%s\t%s\t%d\n"
	MsgConfigWritten    = "Wrote %s\n"
	MsgConfigExists     = "Config file already exists, nothing written\n"
	MsgVersionFormat    = "stash %s\n"
	MsgFallbackWarning  = "Warning: no project root found, using current directory: %s\n"
	MsgInspectField     = "%s %s\n"
	MsgInspectSizeField = "%s %d bytes\n"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrRequirements = "failed to load requirements: %w"
	MsgErrManifest     = "failed to generate manifest: %w"
	MsgErrPut          = "failed to store artifact: %w"
	MsgErrGet          = "failed to read artifact: %w"
	MsgErrInspect      = "failed to inspect artifact: %w"
	MsgErrList         = "failed to list artifacts: %w"
	MsgErrGenConfig    = "failed to generate config: %w"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot         = "Project root (default: $STASH_ROOT, the git root or the current directory)"
	MsgFlagArtifactsDir = "Directory for relative artifact paths (overrides artifacts.dir)"
	MsgFlagFormat       = "Output format"
	MsgFlagFrom         = "Data file to store (JSON or YAML, - for stdin)"
	MsgFlagInputFormat  = "Input format when it cannot be told from the file extension"
	MsgFlagCodec        = "Default codec for extensions without one (overrides artifacts.codec)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/put-long.txt
	msgPutLongRaw string
	MsgPutLong    = strings.TrimSpace(msgPutLongRaw)

	//go:embed msgs/put-example.txt
	msgPutExampleRaw string
	MsgPutExample    = strings.TrimSpace(msgPutExampleRaw)

	//go:embed msgs/get-example.txt
	msgGetExampleRaw string
	MsgGetExample    = strings.TrimSpace(msgGetExampleRaw)
)
