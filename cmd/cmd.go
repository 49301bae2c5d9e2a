package cmd

import (
	"context"
	"log/slog"

	"github.com/gaze-network/inscription-indexer/internal/config"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var (
	// root command
	cmd = &cobra.Command{
		Use: "inscription-indexer",
		Long: `Inscription Indexer validates raw inscriptions block by block and maintains
the derived NFT holders, collections and token balances.`,
	}

	// sub-commands
	cmds = []*cobra.Command{
		NewRunCommand(),
		NewVersionCommand(),
		NewMigrateCommand(),
	}
)

func init() {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("network", "mainnet", "network to connect to, E.g. `mainnet` or `testnet`")

	// Bind flags to configuration
	config.BindPFlag("network", flags.Lookup("network"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		// Initialize configuration
		config := config.Parse(configFile)

		// Initialize logger
		if err := logger.Init(config.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", config.Logger))
		}
	})

	// Register sub-commands
	cmd.AddCommand(cmds...)
}

// Execute runs the root command
func Execute(ctx context.Context) {
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error("Failed to execute root command", slogx.Error(err))
	}
}
