package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"retaildb/pkg/common"
	"retaildb/pkg/config"
	"retaildb/pkg/core"
	"retaildb/pkg/logging"
)

type shopIndex = core.HybridIndex[common.KeyType, common.Product]

var (
	configPath string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "retailctl",
	Short: "Work with an in-memory retail product index",
	Long: `retailctl drives a hybrid product index: a hash map for lookups by
product ID kept in sync with a binary search tree for listing products in ID
order. Settings come from a YAML file (see --config).`,
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, err = logging.New(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger.Debug("config loaded", "ordered", cfg.Index.Ordered, "codec", cfg.Storage.Codec)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Config file (default: configs/retaildb.yaml or retaildb.yaml)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newShop() (*shopIndex, error) {
	return core.NewHybridIndex[common.KeyType, common.Product](cfg.Index, logger)
}
