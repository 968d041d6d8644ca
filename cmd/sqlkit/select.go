package main

import (
	"context"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	selectCmd.Flags().String("table", "", "source table name")
	selectCmd.Flags().StringSlice("fields", nil, "fields to select, in output order")
	selectCmd.Flags().String("where", "", "column=value equality predicate")

	_ = selectCmd.MarkFlagRequired("table")
	_ = selectCmd.MarkFlagRequired("fields")
	_ = selectCmd.MarkFlagRequired("where")

	rootCmd.AddCommand(selectCmd)
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "select rows matching a key predicate",

	SilenceUsage: true,
	RunE:         runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	tableName, err := cmd.Flags().GetString("table")
	if err != nil {
		return err
	}

	fields, err := cmd.Flags().GetStringSlice("fields")
	if err != nil {
		return err
	}

	where, err := cmd.Flags().GetString("where")
	if err != nil {
		return err
	}

	key, err := parseAssignment(where)
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

	rows, err := db.Select(ctx, tableName, fields, key)
	if err != nil {
		return err
	}

	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)

	header := table.Row{}
	for _, field := range fields {
		header = append(header, field)
	}
	w.AppendHeader(header)

	for _, row := range rows {
		out := table.Row{}
		for _, v := range row {
			out = append(out, v.String())
		}
		w.AppendRow(out)
	}

	w.Render()
	return nil
}
