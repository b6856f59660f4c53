package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/consumption-calendar/internal/billing"
	"github.com/username/consumption-calendar/internal/config"
	"github.com/username/consumption-calendar/internal/consumption"
	"github.com/username/consumption-calendar/pkg/random"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	seed       int64
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "consumption-calendar",
		Short: "Electricity consumption calendar",
		Long: `Pick a month and a day to see hourly electricity consumption split into
three time bands, or run the monthly consultation for the lowest and highest
consumption days and the total cost. Readings are simulated per run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.ExpandEnvVars()

			if cmd.Flags().Changed("seed") {
				cfg.Generator.Seed = seed
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
					logger.Warn("Logging to console", zap.String("log_file", cfg.Log.File), zap.Error(err))
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed for readings (overrides generator.seed, 0 = clock)")

	rootCmd.AddCommand(monthsCmd())
	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(publishCmd())
	rootCmd.AddCommand(trayCmd())

	return rootCmd
}

// initializeManager builds the store for this session and the manager over it
func initializeManager(cfg *config.Config) *billing.Manager {
	store := consumption.NewStore(random.New(cfg.Generator.Seed), logger)

	logger.Debug("Consumption store ready",
		zap.Int64("seed", cfg.Generator.Seed),
		zap.Ints("rates", cfg.Tariff.Rates),
		zap.String("currency", cfg.Tariff.Currency))

	return billing.NewManager(store, cfg.Tariff.BillingTariff(), logger)
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// lumberjack opens the file lazily, check it is writable up front
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	f.Close()

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
