package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/spf13/cobra"

	"github.com/udisondev/tussle/internal/arena"
	"github.com/udisondev/tussle/internal/db"
	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/roster"
)

var runCmd = &cobra.Command{
	Use:   "run [roster]",
	Short: "Run battles over a roster",
	Long: `Plays the configured number of independent battles over the roster file.
Each battle ends when a single party is left standing or at max_rounds.
With record enabled the narration is stored in PostgreSQL.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rosterPath := cfg.Roster
		if len(args) == 1 {
			rosterPath = args[0]
		}
		if n, _ := cmd.Flags().GetInt("battles"); n > 0 {
			cfg.Battles = n
		}
		verbose, _ := cmd.Flags().GetBool("narrate")

		logger := combat.SlogTurnLogger(slog.Default())
		if verbose {
			logger = combat.MultiLogger(logger, printStacks(cmd))
		}
		opts := []arena.Option{arena.WithTurnLogger(logger)}
		if cfg.Record {
			database, err := db.New(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer database.Close()
			slog.Info("database connected")

			if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			opts = append(opts, arena.WithStore(database.Battles()))
		}

		runner := arena.NewRunner(cfg.MaxRounds, opts...)
		results, err := runner.RunAll(ctx, cfg.Battles, cfg.Parallel, func() (*roster.Roster, error) {
			return roster.Load(rosterPath, cfg.EquipmentCap)
		})
		if err != nil {
			return err
		}

		wins := arena.Tally(results)
		out := cmd.OutOrStdout()
		for _, party := range slices.Sorted(maps.Keys(wins)) {
			name := party
			if name == "" {
				name = "(no winner)"
			}
			fmt.Fprintf(out, "%-20s %d\n", name, wins[party])
		}
		return nil
	},
}

// printStacks writes every built stack to the command output. Battles run
// concurrently, so whole blocks are written under one lock.
func printStacks(cmd *cobra.Command) combat.TurnLogger {
	var mu sync.Mutex
	return combat.TurnLoggerFunc(func(info combat.TurnInfo, stack *combat.ActionStack) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(cmd.OutOrStdout(), "-- round %d, %s: %s\n%s\n", info.Round, info.Actor, info.Maneuver, stack.Narrate())
	})
}

func init() {
	runCmd.Flags().Int("battles", 0, "number of battles (overrides config)")
	runCmd.Flags().Bool("narrate", false, "print every stack as it is built")
	rootCmd.AddCommand(runCmd)
}
