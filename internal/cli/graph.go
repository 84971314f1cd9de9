package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/squashgraph/pkg/errors"
	"github.com/matzehuels/squashgraph/pkg/graph"
	sgio "github.com/matzehuels/squashgraph/pkg/io"
	"github.com/matzehuels/squashgraph/pkg/migration"
	"github.com/matzehuels/squashgraph/pkg/patch"
	"github.com/matzehuels/squashgraph/pkg/render"
	"github.com/matzehuels/squashgraph/pkg/render/dot"
	"github.com/matzehuels/squashgraph/pkg/source/django"
)

// graphOpts holds the flags of the graph command.
type graphOpts struct {
	includeSquashed bool
	replaceDeps     bool
	removeSquashed  bool
	output          string
	renderer        string
	root            string
	config          string
	apps            []string
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{output: defaultOutput, renderer: render.RendererDot, root: "."}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Draw the migration graph of a Django project",
		Long: `Draw the migration graph of a Django project.

Squashed migrations are folded into the migration that replaces them unless
--include-squashed is given. The output extension selects the format: .dot
writes Graphviz source, .png, .svg, .jpg and .pdf are rendered with the
selected renderer. A .json output writes the graph as JSON.

--replace-squashed-dependencies rewrites dependencies on squashed migrations
in place, --remove-squashed-dependencies deletes the squashed files.`,
		Example: `  squashgraph graph
  squashgraph graph -S -G migrations.svg
  squashgraph graph -a blog -a shop --renderer builtin -G graph.png
  squashgraph graph -R -D`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			opts.merge(cmd, cfg)
			return c.runGraph(cmd.Context(), opts, cfg)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.includeSquashed, "include-squashed", "S", false, "draw squashed migrations and their replacement edges")
	f.BoolVarP(&opts.replaceDeps, "replace-squashed-dependencies", "R", false, "rewrite dependencies on squashed migrations")
	f.BoolVarP(&opts.removeSquashed, "remove-squashed-dependencies", "D", false, "delete squashed migration files")
	f.StringVarP(&opts.output, "graphviz", "G", opts.output, "output file (.dot, .json, .png, .svg, .jpg, .pdf)")
	f.StringVar(&opts.renderer, "renderer", opts.renderer, "image renderer: dot or builtin")
	f.StringArrayVarP(&opts.apps, "app", "a", nil, "restrict the graph to this app (repeatable)")
	f.StringVar(&opts.root, "root", opts.root, "project root searched for apps")
	f.StringVarP(&opts.config, "config", "c", "", "config file (default ./"+configFileName+")")

	_ = cmd.RegisterFlagCompletionFunc("renderer", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{render.RendererDot, render.RendererBuiltin}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// merge fills flags the user did not set from the config file.
func (o *graphOpts) merge(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	if !f.Changed("graphviz") && cfg.Output != "" {
		o.output = cfg.Output
	}
	if !f.Changed("renderer") && cfg.Renderer != "" {
		o.renderer = cfg.Renderer
	}
	if !f.Changed("root") && cfg.Root != "" {
		o.root = cfg.Root
	}
}

// validate checks everything that can fail before a file is written.
func (o graphOpts) validate() (render.Renderer, error) {
	if err := errors.ValidateOutputPath(o.output); err != nil {
		return nil, err
	}
	r, err := render.NewRenderer(o.renderer)
	if err != nil {
		return nil, err
	}
	if f := render.FormatFromPath(o.output); f == render.FormatPDF && o.renderer == render.RendererBuiltin {
		return nil, errors.New(errors.ErrCodeUnsupported, "builtin renderer cannot produce %s, use --renderer %s", f, render.RendererDot)
	}
	for _, label := range o.apps {
		if err := errors.ValidateAppLabel(label); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (c *CLI) runGraph(ctx context.Context, opts graphOpts, cfg *Config) error {
	logger := loggerFromContext(ctx)

	r, err := opts.validate()
	if err != nil {
		return err
	}

	apps, err := cfg.resolveApps(opts.root)
	if err != nil {
		return err
	}
	groups, err := selectGroups(apps, opts.apps)
	if err != nil {
		return err
	}
	logger.Debug("Apps selected", "groups", groups.Names())

	prog := newProgress(logger)
	records, err := django.NewLoader(logger).LoadAll(ctx, apps, groups)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d migrations from %d apps", len(records), len(groups)))

	g := graph.Build(records, groups, graph.Options{HideReplaced: !opts.includeSquashed})
	printNotices(g.Notices())

	if err := exportGraph(ctx, logger, g, opts.output, r); err != nil {
		return err
	}
	printSuccess("wrote %s", opts.output)

	p := patch.New(patch.FileStore{}, django.DependencyRegion)
	if opts.replaceDeps {
		updated, err := p.RewriteReferences(records, g)
		for _, path := range updated {
			printSuccess("%s updated", path)
		}
		if err != nil {
			return err
		}
	}
	if opts.removeSquashed {
		deleted, err := p.DeleteReplaced(records, g)
		for _, path := range deleted {
			printSuccess("%s deleted", path)
		}
		if err != nil {
			return err
		}
	}

	printStats(len(g.VisibleNodes()), g.EdgeCount(), len(g.Replaced()))
	return nil
}

// exportGraph writes g to path as JSON or DOT text, rendering the DOT text
// first when path names an image format.
func exportGraph(ctx context.Context, logger *log.Logger, g *graph.Graph, path string, r render.Renderer) error {
	f := render.FormatFromPath(path)
	if f == render.FormatJSON {
		if err := sgio.ExportJSON(g, path); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "export %s", path)
		}
		return nil
	}

	src := dot.ToDOT(g, dot.Options{})
	if !f.IsImage() {
		return render.Export(ctx, src, path, r)
	}

	logger.Debug("Rendering", "format", f, "path", path)
	spin := newSpinner(ctx, fmt.Sprintf("Rendering %s...", f))
	spin.Start()
	err := render.Export(ctx, src, path, r)
	cancelled := spin.Cancelled()
	spin.Stop()
	if cancelled {
		return ctx.Err()
	}
	return err
}

// selectGroups returns the labels of apps restricted to labels. No labels
// selects every app.
func selectGroups(apps []django.App, labels []string) (migration.Groups, error) {
	if len(labels) == 0 {
		all := make([]string, len(apps))
		for i, a := range apps {
			all[i] = a.Label
		}
		return migration.NewGroups(all...), nil
	}

	known := make(map[string]bool, len(apps))
	for _, a := range apps {
		known[a.Label] = true
	}
	for _, label := range labels {
		if !known[label] {
			return nil, errors.New(errors.ErrCodeAppNotFound, "app %q not found", label)
		}
	}
	return migration.NewGroups(labels...), nil
}

func printNotices(notices []graph.Notice) {
	for _, n := range notices {
		if n.Level == graph.LevelError {
			printError("%s", n.Message())
		} else {
			printSuccess("%s", n.Message())
		}
	}
}
