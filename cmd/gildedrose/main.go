// Package main is the entry point for the inventory simulator.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vyrodovalexey/gildedrose/internal/config"
	"github.com/vyrodovalexey/gildedrose/internal/inventory"
	"github.com/vyrodovalexey/gildedrose/internal/observe"
	"github.com/vyrodovalexey/gildedrose/internal/report"
	"github.com/vyrodovalexey/gildedrose/internal/shop"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// options holds command-line overrides of the environment configuration.
type options struct {
	days          int
	inventoryPath string
	logLevel      string
	metrics       bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gildedrose",
		Short: "Simulate daily quality changes of the Gilded Rose inventory",
		Long: `Print the inventory listing for each simulated day.

Items are read from a YAML fixture (--inventory or APP_INVENTORY_PATH) or,
when none is given, from the built-in stock.

Example:
  gildedrose --days 30
  gildedrose --inventory ./stock.yaml --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, opts, cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("validating flags: %w", err)
			}

			logger, err := initLogger(cfg.LogLevel, stderr)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			return simulate(cfg, logger, stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().IntVarP(&opts.days, "days", "d", config.DefaultDays, "number of days to simulate")
	cmd.Flags().StringVarP(&opts.inventoryPath, "inventory", "i", "", "path to a YAML inventory fixture")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", config.DefaultMetricsEnabled, "record tick metrics")

	return cmd
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("days") {
		cfg.Days = opts.days
	}
	if flags.Changed("inventory") {
		cfg.InventoryPath = opts.inventoryPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("metrics") {
		cfg.MetricsEnabled = opts.metrics
	}
}

func simulate(cfg *config.Config, logger *zap.Logger, stdout io.Writer) error {
	logger = logger.With(zap.String("run_id", uuid.New().String()))

	items, err := loadItems(cfg.InventoryPath)
	if err != nil {
		return err
	}

	logger.Info("inventory loaded",
		zap.Int("items", len(items)),
		zap.String("inventory_path", cfg.InventoryPath),
		zap.Int("days", cfg.Days),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled),
	)

	observers := []observe.Observer{observe.Logging(logger)}

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		observers = append(observers, observe.Metrics(registry))
	}

	s := shop.New(items, shop.WithObserver(observe.Chain(observers...)))
	if err := report.Simulate(stdout, s, cfg.Days); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if registry != nil {
		if err := logMetricsSummary(logger, registry); err != nil {
			logger.Warn("failed to gather metrics", zap.Error(err))
		}
	}

	logger.Info("simulation finished", zap.Int("days", s.Day()))
	return nil
}

func loadItems(path string) ([]*shop.StockedItem, error) {
	if path == "" {
		return inventory.Stock(inventory.Default())
	}
	return inventory.LoadFile(path)
}

// logMetricsSummary logs the total of every gathered metric family.
func logMetricsSummary(logger *zap.Logger, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	fields := make([]zap.Field, 0, len(families))
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		fields = append(fields, zap.Float64(mf.GetName(), total))
	}

	logger.Info("metrics summary", fields...)
	return nil
}

// initLogger initializes a zap logger with the specified log level.
func initLogger(level string, out io.Writer) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(zapLevel),
	)

	return zap.New(core, zap.AddCaller()), nil
}
