package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"emprius-backend/internal/config"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository/postgres"
)

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := postgres.Migrate(cfg.Migrations.Path, cfg.GetDatabaseConnectionString()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okColor.Sprint("schema up to date"))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := postgres.MigrateDown(cfg.Migrations.Path, cfg.GetDatabaseConnectionString()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dimColor.Sprint("rolled back one migration"))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			version, dirty, err := postgres.MigrationVersion(cfg.Migrations.Path, cfg.GetDatabaseConnectionString())
			if err != nil {
				return err
			}
			state := okColor.Sprint("clean")
			if dirty {
				state = failColor.Sprint("dirty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (%s)\n", version, state)
			return nil
		},
	})

	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}
