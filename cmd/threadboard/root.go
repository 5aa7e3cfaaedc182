package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"threadboard/internal/config"
	"threadboard/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "threadboard",
	Short: "threadboard - a small threaded discussion forum",
	Long: `threadboard serves the landing page of a threaded discussion forum:
every thread with its comment count, most recently updated first.`,
	SilenceUsage: true,
}

var (
	configPath string
	envFile    string
)

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (default: environment only)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment if present")
}

// loadConfig loads the configuration and sets up logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, err
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)
	return cfg, nil
}
