package main

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/halli/sqlkit"
)

func init() {
	updateCmd.Flags().String("table", "", "target table name")
	updateCmd.Flags().StringSlice("set", nil, "column=value assignments, in order")
	updateCmd.Flags().String("where", "", "column=value equality predicate")

	_ = updateCmd.MarkFlagRequired("table")
	_ = updateCmd.MarkFlagRequired("set")
	_ = updateCmd.MarkFlagRequired("where")

	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "update rows matching a key predicate",

	SilenceUsage: true,
	RunE:         runUpdate,
}

// parseAssignment splits a column=value argument on the first equals sign.
func parseAssignment(s string) (sqlkit.Assignment, error) {
	idx := strings.Index(s, "=")
	if idx < 0 {
		return sqlkit.Assignment{}, errors.Errorf("invalid assignment %q, expected column=value", s)
	}

	return sqlkit.Assignment{Column: s[:idx], Value: s[idx+1:]}, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	table, err := cmd.Flags().GetString("table")
	if err != nil {
		return err
	}

	sets, err := cmd.Flags().GetStringSlice("set")
	if err != nil {
		return err
	}

	where, err := cmd.Flags().GetString("where")
	if err != nil {
		return err
	}

	var updates []sqlkit.Assignment
	for _, s := range sets {
		a, err := parseAssignment(s)
		if err != nil {
			return err
		}

		updates = append(updates, a)
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

	if err := db.Update(ctx, table, updates, key); err != nil {
		return err
	}

	log.Infof("updated %s where %s = %q", table, key.Column, key.Value)
	return nil
}
