package main

import (
	"go-payroll/internal/app"
	"go-payroll/internal/config"
	"go-payroll/internal/shared/connection"

	"github.com/spf13/cobra"
)

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connection.ConnectGORMWithRetry(cfg.Postgres)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := app.Migrate(db); err != nil {
				return err
			}
			cmd.Println("schema up to date")
			return nil
		},
	}
}
