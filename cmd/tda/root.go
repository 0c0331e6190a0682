package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootOptions holds the merged configuration plus the logger every
// subcommand shares.
type rootOptions struct {
	cfg    Config
	logger *zap.Logger
}

// NewRootCommand creates the tda root command.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cfg, loadErr := LoadConfig()
	opts.cfg = cfg

	cmd := &cobra.Command{
		Use:           "tda",
		Short:         "Persistent homology of weighted networks",
		Long:          "Computes Vietoris-Rips expansions and persistence diagrams of weighted graphs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := ValidateConfig(&opts.cfg); err != nil {
				return err
			}
			logger, err := newLogger(opts.cfg.LogLevel)
			if err != nil {
				return err
			}
			opts.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.cfg.OutputDir, "output", "o", opts.cfg.OutputDir,
		"directory receiving diagram and graph files")
	cmd.PersistentFlags().StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel,
		"minimum log level (debug|info|warn|error)")

	cmd.AddCommand(NewNetworkCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewBettiCommand(opts))

	return cmd
}

// newLogger builds a console logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	parsed, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		parsed,
	)

	return zap.New(core), nil
}

// parseLevel converts a level name to its zapcore.Level.
func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}
