package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/spend-tracker/api"
	"github.com/carson-networks/spend-tracker/internal/operator"
	"github.com/carson-networks/spend-tracker/internal/service"
	"github.com/carson-networks/spend-tracker/internal/storage"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	for _, c := range []*cobra.Command{RootCmd, serveCmd} {
		c.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending database migrations before serving")
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, logger, err := bootstrap()
	if err != nil {
		return err
	}
	logger.Info("spend-tracker starting")

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	if migrateOnStart {
		result, err := storage.RunMigrations(dbStorage.DB)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.WithField("postMigrationVersion", result.PostMigrationVersion).Info("Migration status")
	}

	delegator := operator.NewOperatorDelegator(dbStorage, env.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    env.Port,
		Service: service.NewService(dbStorage, delegator),
		Storage: dbStorage,
	}
	return httpRest.Serve(ctx)
}
