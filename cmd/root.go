package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/spend-tracker/internal/config"
	"github.com/carson-networks/spend-tracker/internal/logging"
)

// RootCmd represents the base command when called without any subcommands.
// It runs the HTTP server.
var RootCmd = &cobra.Command{
	Use:           "spend-tracker",
	Short:         "Personal spending and budget tracker",
	Long:          `Records spending transactions and monthly category budgets, and serves the dashboard API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(serveCmd, migrateCmd, budgetCmd)
}

// bootstrap loads and validates the environment and builds the logger.
func bootstrap() (*config.Config, *logrus.Logger, error) {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, err
	}
	if err := env.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.SetupLogging(env.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logging: %w", err)
	}
	return env, logger, nil
}
