package main

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/halli/sqlkit"
)

func init() {
	migrateCmd.Flags().String("dir", "", "migrations directory (defaults to the config value)")

	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply pending migration scripts",

	SilenceUsage: true,
	RunE:         runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}

	if err := checkConfig(config); err != nil {
		return err
	}

	if dir == "" {
		dir = config.MigrationsDir
	}

	if dir == "" {
		return errors.New("migrations directory is not set")
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := sqlkit.NewRunner(db)
	if err := runner.Run(ctx, dir); err != nil {
		return err
	}

	log.Infof("migrations are up to date")
	return nil
}
