package genconfig

// Message constants
const (
	MsgShort   = "Generate the default configuration file"
	MsgLong    = "Output the default configuration, every value commented out, to stdout or write it to the project root.\n\nAn existing stash.toml is never overwritten."
	MsgExample = `  stash gen-config                    # Output to stdout
  stash gen-config -w                 # Write to <root>/stash.toml`
)
