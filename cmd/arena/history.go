package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/tussle/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history [battle-id]",
	Short: "List recorded battles or replay one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		repo := database.Battles()
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			limit, _ := cmd.Flags().GetInt("limit")
			battles, err := repo.ListBattles(ctx, limit)
			if err != nil {
				return err
			}
			for _, b := range battles {
				winner := b.Winner
				if winner == "" {
					winner = "-"
				}
				fmt.Fprintf(out, "%s  %s  rounds=%-4d winner=%s\n",
					b.ID, b.StartedAt.Format("2006-01-02 15:04:05"), b.Rounds, winner)
			}
			return nil
		}

		b, err := repo.GetBattle(ctx, args[0])
		if err != nil {
			return err
		}
		if b == nil {
			return fmt.Errorf("battle %s: %w", args[0], db.ErrBattleNotFound)
		}
		turns, err := repo.ListTurns(ctx, b.ID)
		if err != nil {
			return err
		}
		for _, t := range turns {
			fmt.Fprintf(out, "-- round %d, %s: %s\n", t.Round, t.Actor, t.Maneuver)
			for _, line := range t.Lines {
				fmt.Fprintln(out, line)
			}
		}
		fmt.Fprintf(out, "winner: %s after %d rounds\n", b.Winner, b.Rounds)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of battles to list")
	rootCmd.AddCommand(historyCmd)
}
