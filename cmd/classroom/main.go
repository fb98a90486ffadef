package main

import (
	"fmt"
	"os"

	"classroom/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "classroom",
	Short: "Object modeling exercises: orders, keyed collections and a grouped record store",
	Long: `classroom runs scripted demos of four order/record models:

  orders list        plain list with linear search
  orders keyed       collection keyed by part number
  orders observable  collection with add/remove notifications
  records            in-memory store grouped by (first, last) name

Run without arguments to execute every demo in order.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logger != nil {
			return nil
		}
		return initLogger(cfg.Log.Level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, run := range []func(*cobra.Command, []string) error{
			runListOrder, runKeyedOrder, runObservableOrder, runRecords,
		} {
			if err := run(cmd, args); err != nil {
				return err
			}
		}
		return nil
	},
}

func initLogger(level string) error {
	zcfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	ordersCmd.AddCommand(ordersListCmd, ordersKeyedCmd, ordersObservableCmd)
	rootCmd.AddCommand(ordersCmd, recordsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
