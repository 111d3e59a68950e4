package cmd

import (
	"context"
	"fmt"

	"GardenTrack/config"
	"GardenTrack/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "gardentrack",
	Short: "Garden plant and harvest tracker",
	Long: `GardenTrack is a small web application for keeping track of the plants
in a garden and the harvests they produce.

Running it without a subcommand starts the web server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute executes the root command.
func Execute() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd.Execute()
}

// env is what every subcommand needs: configuration, a logger and an open store.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  store.Store
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	s, err := config.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, store: s}, nil
}

func (e *env) close(ctx context.Context) {
	if err := e.store.Close(ctx); err != nil {
		e.logger.Warn("Closing store", zap.Error(err))
	}
	e.logger.Sync()
}
