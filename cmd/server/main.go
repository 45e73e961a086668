package main

// @title           Book Records API
// @version         1.0
// @description     Create, read, update and delete book records.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

import (
	"fmt"
	"os"

	"github.com/ParthPatil-04/API-demo/internal/config"
	"github.com/ParthPatil-04/API-demo/internal/logger"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

var envFile string

var rootCmd = &cobra.Command{
	Use:           "server",
	Short:         "Book records HTTP service",
	Version:       appVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig reads the configuration and initialises the logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if cfg.EnvFile != "" {
		logger.Info("loaded env file", "path", cfg.EnvFile)
	}

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting", "error", err)
		os.Exit(1)
	}
}
