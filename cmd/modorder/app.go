package modorder

import (
	"github.com/arthur-debert/modorder/pkg/config"
	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/filesystem"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/orderstore"
	"github.com/arthur-debert/modorder/pkg/paths"
	"github.com/arthur-debert/modorder/pkg/session"
	"github.com/arthur-debert/modorder/pkg/sources"
	"github.com/arthur-debert/modorder/pkg/ui"
	"github.com/spf13/cobra"
)

// app is everything a command needs, built once per invocation.
type app struct {
	paths    paths.Paths
	config   *config.Config
	session  *session.Session
	renderer ui.Renderer
}

// newApp loads configuration, opens the order store, folds the catalog
// sources and selects the requested order.
func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	logger := logging.GetLogger("cmd")
	done := logging.LogOperationStart(logger, "setup")
	defer done()

	p, err := paths.New()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, MsgErrInitPaths)
	}

	cfg, err := config.LoadConfiguration(opts.configPath, p.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	renderer, err := newRenderer(cmd, opts, cfg)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(session.Options{
		Ignore:   cfg.IgnoreSets(),
		Validate: cfg.ValidateOptions(),
		Export: session.ExportOptions{
			AutoAddMissingDependencies: cfg.Export.AutoAddDependencies,
			WorldModType:               cfg.Export.WorldModType,
		},
		Store: orderstore.New(filesystem.NewOS(), p.OrdersDir()),
	})
	if err != nil {
		return nil, err
	}

	if err := absorbSources(sess, opts); err != nil {
		return nil, err
	}

	if opts.order != "" {
		if err := sess.SelectOrder(opts.order); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Int("mods", len(sess.Records())).
		Int("orders", len(sess.Orders())).
		Msg("Session ready")

	return &app{paths: p, config: cfg, session: sess, renderer: renderer}, nil
}

func newRenderer(cmd *cobra.Command, opts *globalOptions, cfg *config.Config) (ui.Renderer, error) {
	name := opts.format
	if name == "" {
		name = cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// absorbSources loads every manifest named on the command line and folds
// them builtin, installed, project.
func absorbSources(sess *session.Session, opts *globalOptions) error {
	manifests := map[sources.Kind][]string{
		sources.KindBuiltin:   opts.builtin,
		sources.KindInstalled: opts.installed,
		sources.KindProject:   opts.project,
	}

	var srcs []sources.Source
	for _, kind := range sources.Kinds() {
		for _, path := range manifests[kind] {
			srcs = append(srcs, sources.Source{Path: path, Kind: kind})
		}
	}

	loaded, err := sources.LoadAll(srcs)
	if err != nil {
		return err
	}

	for _, kind := range sources.Kinds() {
		if len(loaded[kind]) == 0 {
			continue
		}
		if _, err := sess.Absorb(kind, loaded[kind]); err != nil {
			return err
		}
	}
	return nil
}
