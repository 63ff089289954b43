package main

import (
	"classical-cipher-backend/config"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the state shared by every command of one invocation.
type cli struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	app := &cli{}

	rootCmd := &cobra.Command{
		Use:   "cipher",
		Short: "Classical cipher toolkit (Vigenère, Playfair, Hill)",
		Long: `cipher encrypts and decrypts text with three classical ciphers:

  vigenere  keyed Caesar shift per character, keeps spacing and punctuation
  playfair  digraph substitution over a 5x5 key square (J shares I)
  hill      n x n key matrix applied to letter blocks mod 26

These ciphers are for teaching and offer no real security.
Run "cipher serve" to expose the same operations over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.configPath)
			if err != nil {
				return err
			}
			app.cfg = cfg

			level := cfg.Log.Level
			if app.verbose {
				level = "debug"
			}
			app.logger, err = newLogger(level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "cipher.yaml", "path to the YAML config file")

	rootCmd.AddCommand(
		newServeCmd(app),
		newTransformCmd(app, "encrypt"),
		newTransformCmd(app, "decrypt"),
		newHillInverseCmd(app),
	)
	return rootCmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	return zapConfig.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
