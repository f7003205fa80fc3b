package commands

import (
	"database/sql"
	"errors"
	"fmt"

	"internal-tools-api/internal/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var migrateFlags struct {
	seed bool
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			if err := runner.WaitForDatabase(); err != nil {
				return err
			}
			if err := runner.RunMigrations(); err != nil {
				return err
			}
			return runner.LoadSeeds()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			return runner.RollbackLast()
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrationRunner(func(runner *database.MigrationRunner) error {
			version, dirty, err := runner.GetMigrationStatus()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %t\n", version, dirty)
			return nil
		})
	},
}

func init() {
	migrateUpCmd.Flags().BoolVar(&migrateFlags.seed, "seed", false, "Load seed data after migrating")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func withMigrationRunner(fn func(*database.MigrationRunner) error) error {
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	migrations := cfg.Migrations
	migrations.Seed = migrations.Seed || migrateFlags.seed
	return fn(database.NewMigrationRunner(sqlDB, migrations))
}
