// Package cmd provides the root command and CLI setup for neurots.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacquemi-bbp/NeuroTS/internal/adapter"
	"github.com/jacquemi-bbp/NeuroTS/internal/config"
	"github.com/jacquemi-bbp/NeuroTS/internal/controller"
	"github.com/jacquemi-bbp/NeuroTS/internal/domain"
	"github.com/jacquemi-bbp/NeuroTS/internal/logging"
)

var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var inputLoader adapter.InputLoader
var workflow domain.Workflow
var ui controller.UI

// appConfig is resolved before every command runs.
var appConfig = config.Default()

func init() {
	logger = logging.NewLogger(logLevel, os.Stderr)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	inputLoader = adapter.NewInputLoader()
	workflow = domain.NewWorkflow(
		inputLoader,
		adapter.NewMorphologyStore,
		ui,
		logger,
	)
}

var configFlag string
var logLevelFlag string
var storeFlag string
var storePathFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neurots",
		Short: "Synthesize neuronal morphologies from topological barcodes",
		Long: `NeuroTS grows artificial neurons from statistical input distributions.

Every tree is grown from a persistence barcode: each bar tells a branch
when to split off and when to terminate. The synthesized morphologies are
kept in a store and can be listed, summarized or exported as SWC.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.neurots/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: info, debug or trace")
	cmd.PersistentFlags().StringVar(&storeFlag, "store", "", "morphology store: fs, sqlite or memory")
	cmd.PersistentFlags().StringVar(&storePathFlag, "store-path", "", "output directory (fs) or database file (sqlite)")

	return cmd
}

// loadConfig merges the config file, the environment and the persistent
// flags, in increasing priority.
func loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevelFlag
	}
	if flags.Changed("store") {
		cfg.Store.Kind = storeFlag
	}
	if flags.Changed("store-path") {
		cfg.Store.Path = storePathFlag
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logLevel.Set(logging.ParseLevel(cfg.Logging.Level))
	appConfig = cfg

	return nil
}

func storeConfig() adapter.StoreConfig {
	return adapter.StoreConfig{Kind: appConfig.Store.Kind, Path: appConfig.Store.Path}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
