package main

import (
	"github.com/spf13/cobra"

	"github.com/halli/sqlkit"
)

func init() {
	createCmd.Flags().String("dir", "", "migrations directory (defaults to the config value)")

	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "scaffold a new migration script",
	Args:  cobra.ExactArgs(1),

	SilenceUsage: true,
	RunE:         runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}

	if dir == "" && config != nil {
		dir = config.MigrationsDir
	}

	if dir == "" {
		dir = "migrations"
	}

	if _, err := sqlkit.CreateMigration(dir, args[0]); err != nil {
		return err
	}

	return nil
}
