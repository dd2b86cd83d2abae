package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/tussle/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.RunMigrations(cmd.Context(), cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
