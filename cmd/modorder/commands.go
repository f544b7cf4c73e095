package modorder

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/filesystem"
	"github.com/arthur-debert/modorder/pkg/loadorder"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/modsettings"
	"github.com/arthur-debert/modorder/pkg/orderstore"
	"github.com/arthur-debert/modorder/pkg/paths"
	"github.com/arthur-debert/modorder/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "catalog",
		Short:   MsgCatalogShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(display.NewCatalogView(a.session.Records()))
		},
	}
}

func newValidateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			active, err := a.session.Active()
			if err != nil {
				return err
			}
			report, err := a.session.Validate()
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cmd.validate")
			logger.Info().
				Str("order", active.Name).
				Int("missing", len(report.Missing)).
				Int("dependencies", len(report.DependencyMissing)).
				Int("extension", len(report.ExtensionRequired)).
				Msg("Validated load order")

			return a.renderer.RenderResult(display.ReportView{Order: active.Name, Report: report})
		},
	}
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			result, err := a.session.Export()
			if err != nil {
				return err
			}
			gameVersion, err := a.config.GameVersion()
			if err != nil {
				return err
			}
			settingsOpts := modsettings.Options{GameVersion: gameVersion}

			if output == "" {
				return modsettings.Write(cmd.OutOrStdout(), result.Records, settingsOpts)
			}

			var buf bytes.Buffer
			if err := modsettings.Write(&buf, result.Records, settingsOpts); err != nil {
				return err
			}
			fsys := filesystem.NewOS()
			if err := fsys.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to create output directory").
					WithDetail("path", output)
			}
			if err := fsys.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write settings file").
					WithDetail("path", output)
			}

			return a.renderer.RenderResult(display.NewExportView(result.Order, output, result))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "import <settings-file>",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.import")

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, MsgErrOpenSettings).
					WithDetail("path", args[0])
			}
			defer func() { _ = f.Close() }()

			settings, err := modsettings.Parse(f)
			if err != nil {
				return err
			}

			if name == "" {
				base := filepath.Base(args[0])
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			order := loadorder.New(name)
			for _, d := range settings.Mods {
				if a.session.IsBuiltin(d.UUID) {
					continue
				}
				if err := order.Add(d.UUID, d.Name); err != nil {
					logger.Warn().Err(err).Str("uuid", string(d.UUID)).Msg("Skipping settings entry")
				}
			}

			if err := a.session.ImportOrder(order); err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgOrderImported, order.Len(), order.Name))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	return cmd
}

func newOrderCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "order",
		Short:   MsgOrderShort,
		GroupID: "core",
	}

	cmd.AddCommand(
		newOrderShowCmd(opts),
		newOrderListCmd(opts),
		newOrderCreateCmd(opts),
		newOrderDeleteCmd(opts),
		newOrderAddCmd(opts),
		newOrderRemoveCmd(opts),
		newOrderMoveCmd(opts),
	)
	return cmd
}

func newOrderShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgOrderShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			active, err := a.session.Active()
			if err != nil {
				return err
			}
			report, err := a.session.Validate()
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(display.NewOrderView(active, report, a.session))
		},
	}
}

func newOrderListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgOrderListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			view := display.OrderListView{Orders: a.session.Orders()}
			if active, err := a.session.Active(); err == nil {
				view.Active = active.Name
			}
			return a.renderer.RenderResult(view)
		},
	}
}

func newOrderCreateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: MsgOrderNewShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.session.CreateOrder(args[0]); err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgOrderCreated, args[0]))
		},
	}
}

func newOrderDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "delete <name>",
		Short:             MsgOrderDelShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: orderNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.session.DeleteOrder(args[0]); err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgOrderDeleted, args[0]))
		},
	}
}

func newOrderAddCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "add <uuid>...",
		Short:   MsgOrderAddShort,
		Example: MsgOrderAddExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			for _, id := range args {
				if err := a.session.Add(mod.UUID(id)); err != nil {
					return err
				}
			}
			active, err := a.session.Active()
			if err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgModsAdded, len(args), active.Name))
		},
	}
}

func newOrderRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <uuid>...",
		Aliases: []string{"rm"},
		Short:   MsgOrderRmShort,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			for _, id := range args {
				if err := a.session.Remove(mod.UUID(id)); err != nil {
					return err
				}
			}
			active, err := a.session.Active()
			if err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgModsRemoved, len(args), active.Name))
		},
	}
}

func newOrderMoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "move <uuid> <position>",
		Short: MsgOrderMoveShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Positions are 1-based on the command line
			position, err := strconv.Atoi(args[1])
			if err != nil || position < 1 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrPosition, args[1])
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if err := a.session.Move(mod.UUID(args[0]), position-1); err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgModMoved, args[0], position))
		},
	}
}

// orderNamesCompletion completes saved order names
func orderNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	p, err := paths.New()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := orderstore.New(filesystem.NewOS(), p.OrdersDir()).List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
