package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/spend-tracker/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, logger, err := bootstrap()
		if err != nil {
			return err
		}

		dbStorage, err := storage.NewStorage(env)
		if err != nil {
			return err
		}
		defer dbStorage.Close()

		result, err := storage.RunMigrations(dbStorage.DB)
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreMigrationVersion,
			"postMigrationVersion": result.PostMigrationVersion,
		}).Info("Migration status")
		return nil
	},
}
