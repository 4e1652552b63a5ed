package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"transecta/config"
	"transecta/species"
	"transecta/transect"
)

// cli holds the flags and the state shared by every subcommand once the
// config has been loaded.
type cli struct {
	configPath string
	length     float64
	verbose    bool

	cfg      *config.Config
	settings config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "transecta",
		Short: "Record and summarise line-intercept vegetation transects",
		Long: `transecta records (species, start, end) intervals along a transect
line, infers bare ground for the gaps and summarises cover per species.

Run without arguments to start the interactive screen.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		Args: cobra.MaximumNArgs(1),
		RunE: c.runTUI,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+filepath.Join(config.Dir(), "config.yaml")+")")
	root.PersistentFlags().Float64Var(&c.length, "length", 0, "transect length in metres (overrides the config)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui [file.csv]",
			Short: "Start the interactive screen, optionally resuming from a CSV export",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.runTUI,
		},
		c.reportCmd(),
		&cobra.Command{
			Use:   "species",
			Short: "List the species offered by default",
			Args:  cobra.NoArgs,
			RunE:  c.listSpecies,
		},
	)
	return root
}

// setup loads the config and starts logging. Logs go to a file so they
// never draw over the terminal UI.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.settings = cfg.Settings()

	if cmd.Flags().Changed("length") {
		if !(c.length > 0) || math.IsInf(c.length, 0) {
			return fmt.Errorf("--length must be a positive number, got %v", c.length)
		}
	}

	logger, err := newLogger(c.settings.Log, filepath.Dir(cfg.File()), c.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	cfg.UseLogger(logger)
	logger.Debug("config loaded", zap.String("file", cfg.File()), zap.Float64("length", c.transectLength()))
	return nil
}

// newLogger builds a JSON file logger. A relative log file is placed next
// to the config file; an empty one disables logging.
func newLogger(lc config.LogConfig, dir string, verbose bool) (*zap.Logger, error) {
	if lc.File == "" {
		return zap.NewNop(), nil
	}
	path := lc.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	level := zapcore.InfoLevel
	if lc.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(lc.Level); err != nil {
			return nil, err
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}

// transectLength is the --length override when given, otherwise the
// configured length. c.settings keeps the configured value so config
// reloads compare like with like.
func (c *cli) transectLength() float64 {
	if c.length > 0 {
		return c.length
	}
	return c.settings.Transect.Length
}

func (c *cli) newCatalog() *species.Catalog {
	return species.New(c.settings.Catalog.Sorted, c.settings.Catalog.Seed...)
}

func (c *cli) newSession(catalog *species.Catalog) *transect.Session {
	return transect.NewSession(c.transectLength(), catalog, c.logger)
}

func (c *cli) listSpecies(cmd *cobra.Command, args []string) error {
	for _, name := range c.newCatalog().All() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
