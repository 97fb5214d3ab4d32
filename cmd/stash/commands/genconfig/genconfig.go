package genconfig

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command.
// RunE is set by the root command, which owns project and config setup.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "project",
	}

	cmd.Flags().BoolP("write", "w", false, "Write config to the project's stash.toml instead of stdout")

	return cmd
}
