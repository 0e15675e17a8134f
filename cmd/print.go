package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/CooperTran2196/scenetree/internal/output"
	"github.com/CooperTran2196/scenetree/internal/scene"
	"github.com/CooperTran2196/scenetree/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type printOptions struct {
	extractor string
	object    string
	noSummary bool
	watch     bool
}

func newPrintCmd(a *app) *cobra.Command {
	var opts printOptions
	cmd := &cobra.Command{
		Use:     "print <scene.unity>",
		Aliases: []string{"hierarchy"},
		Short:   "Print the GameObject hierarchy of a scene",
		Long: `Print the GameObject hierarchy of a Unity scene file.

Each root object starts a new tree. Active objects are marked with ✓ and
inactive objects with ✗ (configurable through the glyphs section of the
config file).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPrint(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.extractor, "extractor", "", "Field extraction strategy (scan, yaml)")
	cmd.Flags().StringVar(&opts.object, "object", "", "Print only the subtree of the GameObject with this file id")
	cmd.Flags().BoolVar(&opts.noSummary, "no-summary", false, "Omit the header, counts and legend")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-print the hierarchy whenever the scene file changes")
	return cmd
}

func (a *app) runPrint(cmd *cobra.Command, path string, opts printOptions) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSceneNotFound, path)
		}
		return err
	}

	name := opts.extractor
	if name == "" {
		name = a.cfg.Extractor
	}
	extractor, err := scene.ParseExtractor(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	render := func() error {
		h, err := scene.ParseFile(path, scene.WithExtractor(extractor), scene.WithLogger(a.logger))
		if err != nil {
			return fmt.Errorf("reading scene: %w", err)
		}
		return a.writeScene(out, filepath.Base(path), h, opts)
	}

	if err := render(); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	w, err := watch.New(path, watch.DefaultDebounce, a.logger)
	if err != nil {
		return err
	}
	if !output.IsStructured(a.format) {
		output.NewConsole(out, a.styled(out)).FormatWatching(path)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return w.Run(ctx, func() {
		if err := render(); err != nil {
			a.logger.Warn("re-render failed", zap.String("path", path), zap.Error(err))
		}
	})
}

func (a *app) writeScene(w io.Writer, sceneName string, h *scene.Hierarchy, opts printOptions) error {
	if opts.object != "" {
		if _, ok := h.Object(opts.object); !ok {
			return fmt.Errorf("%w: %s in %s", ErrObjectNotFound, opts.object, sceneName)
		}
	}

	if output.IsStructured(a.format) {
		report := output.NewReport(sceneName, h)
		if opts.object != "" {
			report.Roots = []*scene.Node{h.Tree(opts.object)}
		}
		return a.printer(w).Print(report)
	}

	renderer := scene.NewRenderer(a.cfg.Glyphs)
	blocks := renderer.RenderHierarchy(h)
	if opts.object != "" {
		blocks = [][]scene.Line{renderer.RenderObject(h, opts.object)}
	}

	console := output.NewConsole(w, a.styled(w))
	if !opts.noSummary {
		console.FormatHeader(sceneName)
		console.FormatSummary(h.Stats())
		console.FormatLegend(a.cfg.Glyphs)
	}
	console.FormatTree(blocks)
	return nil
}
