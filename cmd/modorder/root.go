package modorder

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/modorder/internal/version"
	"github.com/arthur-debert/modorder/pkg/cobrax/topics"
	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	configPath string
	builtin    []string
	installed  []string
	project    []string
	format     string
	order      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "modorder",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	flags.StringArrayVar(&opts.builtin, "builtin", nil, MsgFlagBuiltin)
	flags.StringArrayVar(&opts.installed, "installed", nil, MsgFlagInstalled)
	flags.StringArrayVar(&opts.project, "project", nil, MsgFlagProject)
	flags.StringVar(&opts.format, "format", "", MsgFlagFormat)
	flags.StringVar(&opts.order, "order", "", MsgFlagOrder)
	_ = rootCmd.RegisterFlagCompletionFunc("order", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return orderNamesCompletion(cmd, nil, toComplete)
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCatalogCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newOrderCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		topicOpts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   style.NewMarkdownRenderer(),
		}
		if err := topics.InitializeWithOptions(rootCmd, sub, topicOpts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}
