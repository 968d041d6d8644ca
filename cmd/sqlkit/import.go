package main

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/halli/sqlkit"
)

func init() {
	importCmd.Flags().String("table", "", "target table name")
	importCmd.Flags().String("file", "", "delimited text file with a header line")
	importCmd.Flags().String("sep", ";", "field separator")

	_ = importCmd.MarkFlagRequired("table")
	_ = importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "insert the rows of a delimited text file within one transaction",

	SilenceUsage: true,
	RunE:         runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	table, err := cmd.Flags().GetString("table")
	if err != nil {
		return err
	}

	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	sep, err := cmd.Flags().GetString("sep")
	if err != nil {
		return err
	}

	if len(sep) != 1 {
		return errors.Errorf("separator must be a single character, got %q", sep)
	}

	header, rows, err := sqlkit.ReadDelimited(file, rune(sep[0]))
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

	if err := db.InsertBatch(ctx, table, header, rows); err != nil {
		return err
	}

	log.Infof("imported %d rows into %s", len(rows), table)
	return nil
}
