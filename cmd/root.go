package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CooperTran2196/scenetree/internal/config"
	"github.com/CooperTran2196/scenetree/internal/logging"
	"github.com/CooperTran2196/scenetree/internal/output"
	"github.com/CooperTran2196/scenetree/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	// ErrSceneNotFound is returned when the scene path does not exist
	ErrSceneNotFound = errors.New("scene file not found")
	// ErrObjectNotFound is returned by print --object for an unknown id
	ErrObjectNotFound = errors.New("object not found")
)

// app carries the global flags and the state resolved from them
type app struct {
	configFile string
	verbose    bool
	outputFmt  string
	queryExpr  string
	colorMode  string

	cfg    *config.Config
	format output.Format
	logger *zap.Logger
}

// NewRootCmd builds the scenetree command tree
func NewRootCmd() *cobra.Command {
	a := &app{logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "scenetree",
		Short: "Print the GameObject hierarchy of Unity scene files",
		Long: `scenetree reads a Unity scene (.unity) and prints its GameObject hierarchy
as an indented tree, marking each object as active or inactive.

Environment Variables:
  SCENETREE_SCENES_DIR  Directory searched by 'scenetree list'
  SCENETREE_OUTPUT      Default output format (text|json|yaml)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.Version = version.Version
	root.SetVersionTemplate(version.Get().String() + "\n")

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: ~/.config/scenetree/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().StringVarP(&a.outputFmt, "output", "o", "text", "Output format (text|json|yaml)")
	root.PersistentFlags().StringVar(&a.queryExpr, "query", "", "jq expression to filter json/yaml output")
	root.PersistentFlags().StringVar(&a.colorMode, "color", config.ColorAuto, "Colorize text output (auto|always|never)")

	root.AddCommand(newPrintCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup resolves configuration with precedence flag > env > file > default
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.logger = logging.New(a.verbose, cmd.ErrOrStderr())

	path := a.configFile
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)

	if cmd.Flags().Changed("output") {
		cfg.OutputFormat = a.outputFmt
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = a.colorMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}
	if a.queryExpr != "" && !output.IsStructured(format) {
		return fmt.Errorf("--query requires --output json or yaml")
	}
	if err := output.ValidateQuery(a.queryExpr); err != nil {
		return err
	}

	a.cfg = cfg
	a.format = format
	a.logger.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("output", string(format)),
		zap.String("extractor", cfg.Extractor),
		zap.String("color", cfg.Color))
	return nil
}

// styled reports whether text output should carry colour
func (a *app) styled(w io.Writer) bool {
	switch strings.ToLower(a.cfg.Color) {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

func (a *app) printer(w io.Writer) *output.Printer {
	return output.NewPrinter(w, a.format, a.queryExpr)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
