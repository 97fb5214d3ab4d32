package stash

import (
	"fmt"

	"github.com/arthur-debert/stash/cmd/stash/commands/genconfig"
	"github.com/arthur-debert/stash/internal/version"
	"github.com/arthur-debert/stash/pkg/commands"
	"github.com/arthur-debert/stash/pkg/config"
	"github.com/arthur-debert/stash/pkg/filesystem"
	"github.com/arthur-debert/stash/pkg/logging"
	"github.com/arthur-debert/stash/pkg/manifest"
	"github.com/arthur-debert/stash/pkg/paths"
	"github.com/arthur-debert/stash/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity    int
	root         string
	artifactsDir string
}

// env is what a command needs to run against a project
type env struct {
	fs     types.FS
	paths  paths.Paths
	config *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "stash",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&opts.artifactsDir, "artifacts-dir", "", MsgFlagArtifactsDir)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "project",
		Title: "PROJECT:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "artifacts",
		Title: "ARTIFACTS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newRequirementsCmd(opts))
	rootCmd.AddCommand(newManifestCmd(opts))
	rootCmd.AddCommand(newPutCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newLsCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// initEnv resolves the project paths and loads its configuration.
// overrides are dotted config keys set by flags.
func initEnv(cmd *cobra.Command, opts *globalOptions, overrides map[string]interface{}) (*env, error) {
	p, err := paths.New(opts.root)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.ProjectRoot())
	}

	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if opts.artifactsDir != "" {
		overrides["artifacts.dir"] = opts.artifactsDir
	}

	cfg, err := config.Load(p, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	log.Debug().Str("root", p.ProjectRoot()).Str("artifacts", cfg.Artifacts.Dir).Msg("Environment ready")
	return &env{fs: filesystem.NewOS(), paths: p, config: cfg}, nil
}

func newRequirementsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "requirements [file]",
		Short:   MsgRequirementsShort,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "project",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(cmd, opts, nil)
			if err != nil {
				return err
			}

			listOpts := commands.ListRequirementsOptions{FS: e.fs, Paths: e.paths, Config: e.config}
			if len(args) == 1 {
				listOpts.File = args[0]
			}

			result, err := commands.ListRequirements(listOpts)
			if err != nil {
				return fmt.Errorf(MsgErrRequirements, err)
			}

			out := cmd.OutOrStdout()
			if len(result.Requirements) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgNoRequirements, result.File)
				return nil
			}
			for _, r := range result.Requirements {
				fmt.Fprintln(out, r)
			}
			return nil
		},
	}
}

func newManifestCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "manifest",
		Short:   MsgManifestShort,
		Args:    cobra.NoArgs,
		GroupID: "project",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(cmd, opts, nil)
			if err != nil {
				return err
			}

			result, err := commands.GenerateManifest(commands.GenerateManifestOptions{
				FS:     e.fs,
				Paths:  e.paths,
				Config: e.config,
				Format: format,
			})
			if err != nil {
				return fmt.Errorf(MsgErrManifest, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), result.Content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", manifest.FormatTOML, MsgFlagFormat+" (toml, yaml, json)")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(manifest.Formats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newPutCmd(opts *globalOptions) *cobra.Command {
	var (
		from        string
		inputFormat string
		codec       string
	)

	cmd := &cobra.Command{
		Use:     "put <artifact>",
		Short:   MsgPutShort,
		Long:    MsgPutLong,
		Example: MsgPutExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if codec != "" {
				overrides["artifacts.codec"] = codec
			}
			e, err := initEnv(cmd, opts, overrides)
			if err != nil {
				return err
			}

			result, err := commands.PutArtifact(commands.PutArtifactOptions{
				FS:           e.fs,
				Paths:        e.paths,
				Config:       e.config,
				Artifact:     args[0],
				Source:       from,
				Input:        cmd.InOrStdin(),
				SourceFormat: inputFormat,
			})
			if err != nil {
				return fmt.Errorf(MsgErrPut, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgArtifactSaved, result.Artifact.Path, result.Artifact.Codec, result.Artifact.Kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", MsgFlagFrom)
	cmd.Flags().StringVar(&inputFormat, "input-format", "", MsgFlagInputFormat+" (json, yaml)")
	cmd.Flags().StringVar(&codec, "codec", "", MsgFlagCodec)
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newGetCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "get <artifact>",
		Short:   MsgGetShort,
		Example: MsgGetExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(cmd, opts, nil)
			if err != nil {
				return err
			}

			result, err := commands.GetArtifact(commands.GetArtifactOptions{
				FS:       e.fs,
				Paths:    e.paths,
				Config:   e.config,
				Artifact: args[0],
				Format:   format,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGet, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), result.Content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", MsgFlagFormat+" (json, yaml)")

	return cmd
}

func newInspectCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <artifact>",
		Short:   MsgInspectShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(cmd, opts, nil)
			if err != nil {
				return err
			}

			info, err := commands.InspectArtifact(commands.InspectArtifactOptions{
				FS:       e.fs,
				Paths:    e.paths,
				Config:   e.config,
				Artifact: args[0],
			})
			if err != nil {
				return fmt.Errorf(MsgErrInspect, err)
			}

			renderArtifactInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func newLsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ls [dir]",
		Short:   MsgLsShort,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := initEnv(cmd, opts, nil)
			if err != nil {
				return err
			}

			listOpts := commands.ListArtifactsOptions{FS: e.fs, Paths: e.paths, Config: e.config}
			if len(args) == 1 {
				listOpts.Dir = args[0]
			}

			result, err := commands.ListArtifacts(listOpts)
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}

			if len(result.Artifacts) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgNoArtifacts, result.Dir)
				return nil
			}
			return renderArtifactList(cmd.OutOrStdout(), result.Artifacts)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := genconfig.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")

		p, err := paths.New(opts.root)
		if err != nil {
			return fmt.Errorf(MsgErrInitPaths, err)
		}

		result, err := commands.GenConfig(commands.GenConfigOptions{
			FS:    filesystem.NewOS(),
			Paths: p,
			Write: write,
		})
		if err != nil {
			return fmt.Errorf(MsgErrGenConfig, err)
		}

		if !write {
			fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			return nil
		}
		if len(result.FilesWritten) == 0 {
			fmt.Fprint(cmd.ErrOrStderr(), MsgConfigExists)
			return nil
		}
		for _, f := range result.FilesWritten {
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, f)
		}
		return nil
	}
	return cmd
}
