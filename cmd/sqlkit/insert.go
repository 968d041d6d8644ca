package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	insertCmd.Flags().String("table", "", "target table name")
	insertCmd.Flags().StringSlice("columns", nil, "column names, in value order")
	insertCmd.Flags().StringSlice("values", nil, "values, in column order")

	_ = insertCmd.MarkFlagRequired("table")
	_ = insertCmd.MarkFlagRequired("columns")
	_ = insertCmd.MarkFlagRequired("values")

	rootCmd.AddCommand(insertCmd)
}

var insertCmd = &cobra.Command{
	Use:   "insert",
	Short: "insert one row into a table",

	SilenceUsage: true,
	RunE:         runInsert,
}

func runInsert(cmd *cobra.Command, args []string) error {
	table, err := cmd.Flags().GetString("table")
	if err != nil {
		return err
	}

	columns, err := cmd.Flags().GetStringSlice("columns")
	if err != nil {
		return err
	}

	values, err := cmd.Flags().GetStringSlice("values")
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Insert(ctx, table, columns, values); err != nil {
		return err
	}

	log.Infof("inserted 1 row into %s", table)
	return nil
}
