// Package arena runs battles between roster parties and records their outcome.
package arena

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/model"
	"github.com/udisondev/tussle/internal/roster"
)

// Store persists battle records.
type Store interface {
	CreateBattle(ctx context.Context, b model.BattleRecord) error
	AppendTurns(ctx context.Context, battleID string, turns []model.TurnRecord) error
	FinishBattle(ctx context.Context, id string, finishedAt time.Time, rounds int, winner string) error
}

// Result is the outcome of one battle.
type Result struct {
	ID     string
	Rounds int

	// Winner is the last party standing, empty if the round cap was reached first.
	Winner   string
	Standing []string
	Turns    int
}

// Runner plays battles to completion.
type Runner struct {
	maxRounds int
	store     Store
	logger    combat.TurnLogger
	now       func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithStore records every battle in s.
func WithStore(s Store) Option {
	return func(r *Runner) { r.store = s }
}

// WithTurnLogger receives every built stack in addition to the recorder.
func WithTurnLogger(l combat.TurnLogger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithClock overrides time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a Runner stopping battles after maxRounds rounds.
func NewRunner(maxRounds int, opts ...Option) *Runner {
	r := &Runner{maxRounds: maxRounds, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays one battle over the roster's characters. The battle ends when at most
// one party has living members or after maxRounds rounds. It checks ctx between rounds.
func (r *Runner) Run(ctx context.Context, rs *roster.Roster) (Result, error) {
	actors := make([]combat.Actor, 0, len(rs.Characters))
	for _, c := range rs.Characters {
		actors = append(actors, c)
	}
	cmb, err := combat.New(actors...)
	if err != nil {
		return Result{}, fmt.Errorf("creating combat: %w", err)
	}

	res := Result{ID: ulid.Make().String()}
	log := slog.With("battle", res.ID)

	if r.store != nil {
		rec := model.BattleRecord{ID: res.ID, RosterFingerprint: rs.Fingerprint, StartedAt: r.now()}
		if err := r.store.CreateBattle(ctx, rec); err != nil {
			return res, fmt.Errorf("recording battle start: %w", err)
		}
	}
	log.Info("battle started", "actors", len(actors), "fingerprint", rs.Fingerprint)

	recorder := &Recorder{}
	turnLogger := combat.MultiLogger(recorder, r.logger)

	for cmb.Round() < r.maxRounds && len(cmb.StandingParties()) > 1 {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := cmb.ProcessTurn(turnLogger); err != nil {
			return res, fmt.Errorf("battle %s: %w", res.ID, err)
		}
		if r.store != nil {
			if err := r.store.AppendTurns(ctx, res.ID, recorder.Flush()); err != nil {
				return res, fmt.Errorf("recording round %d: %w", cmb.Round(), err)
			}
		} else {
			recorder.Flush()
		}
	}

	res.Rounds = cmb.Round()
	res.Standing = cmb.StandingParties()
	res.Turns = recorder.Total()
	if len(res.Standing) == 1 {
		res.Winner = res.Standing[0]
	}

	if r.store != nil {
		if err := r.store.FinishBattle(ctx, res.ID, r.now(), res.Rounds, res.Winner); err != nil {
			return res, fmt.Errorf("recording battle result: %w", err)
		}
	}
	log.Info("battle finished", "rounds", res.Rounds, "winner", res.Winner, "standing", res.Standing)
	return res, nil
}

// RunAll plays n independent battles, at most parallel at a time. A parallel below 1
// means no limit. load is called once per battle so that no two battles share
// characters. The first error cancels the remaining battles.
func (r *Runner) RunAll(ctx context.Context, n, parallel int, load func() (*roster.Roster, error)) ([]Result, error) {
	results := make([]Result, n)

	g, ctx := errgroup.WithContext(ctx)
	if parallel < 1 {
		parallel = -1
	}
	g.SetLimit(parallel)
	for i := range n {
		g.Go(func() error {
			rs, err := load()
			if err != nil {
				return fmt.Errorf("loading roster for battle %d: %w", i, err)
			}
			res, err := r.Run(ctx, rs)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Tally counts wins per party. Capped battles count under the empty party name.
func Tally(results []Result) map[string]int {
	wins := make(map[string]int)
	for _, res := range results {
		wins[res.Winner]++
	}
	return wins
}
