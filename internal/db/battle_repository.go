package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/tussle/internal/model"
)

// BattleRepository manages the battles and battle_turns tables.
type BattleRepository struct {
	db *pgxpool.Pool
}

// NewBattleRepository creates a new BattleRepository.
func NewBattleRepository(db *pgxpool.Pool) *BattleRepository {
	return &BattleRepository{db: db}
}

// CreateBattle inserts the battle row at start. Rounds and winner are filled by FinishBattle.
func (r *BattleRepository) CreateBattle(ctx context.Context, b model.BattleRecord) error {
	query := `
		INSERT INTO battles (id, roster_fingerprint, started_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.Exec(ctx, query, b.ID, b.RosterFingerprint, b.StartedAt); err != nil {
		return fmt.Errorf("inserting battle %s: %w", b.ID, err)
	}
	return nil
}

// AppendTurns bulk-inserts the narration of one or more turns.
func (r *BattleRepository) AppendTurns(ctx context.Context, battleID string, turns []model.TurnRecord) error {
	if len(turns) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(turns))
	for _, t := range turns {
		rows = append(rows, []any{battleID, t.Round, t.Seq, t.Actor, t.Maneuver, t.Lines})
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"battle_turns"},
		[]string{"battle_id", "round", "seq", "actor", "maneuver", "lines"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting turns for battle %s: %w", battleID, err)
	}

	slog.Debug("saved battle turns",
		"battleID", battleID,
		"count", len(turns))

	return nil
}

// FinishBattle stores the outcome of a battle.
func (r *BattleRepository) FinishBattle(ctx context.Context, id string, finishedAt time.Time, rounds int, winner string) error {
	query := `
		UPDATE battles
		SET finished_at = $2, rounds = $3, winner = $4
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, finishedAt, rounds, winner)
	if err != nil {
		return fmt.Errorf("finishing battle %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("finishing battle %s: %w", id, ErrBattleNotFound)
	}
	return nil
}

// GetBattle loads one battle. Returns nil, nil if it does not exist.
func (r *BattleRepository) GetBattle(ctx context.Context, id string) (*model.BattleRecord, error) {
	query := `
		SELECT id, roster_fingerprint, started_at, finished_at, rounds, winner
		FROM battles
		WHERE id = $1
	`

	var b model.BattleRecord
	var finished *time.Time
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.RosterFingerprint, &b.StartedAt, &finished, &b.Rounds, &b.Winner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying battle %s: %w", id, err)
	}
	if finished != nil {
		b.FinishedAt = *finished
	}
	return &b, nil
}

// ListBattles returns the most recent battles, newest first.
func (r *BattleRepository) ListBattles(ctx context.Context, limit int) ([]model.BattleRecord, error) {
	query := `
		SELECT id, roster_fingerprint, started_at, finished_at, rounds, winner
		FROM battles
		ORDER BY started_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying battles: %w", err)
	}
	defer rows.Close()

	battles := make([]model.BattleRecord, 0, limit)
	for rows.Next() {
		var b model.BattleRecord
		var finished *time.Time
		if err := rows.Scan(&b.ID, &b.RosterFingerprint, &b.StartedAt, &finished, &b.Rounds, &b.Winner); err != nil {
			return nil, fmt.Errorf("scanning battle row: %w", err)
		}
		if finished != nil {
			b.FinishedAt = *finished
		}
		battles = append(battles, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating battle rows: %w", err)
	}

	return battles, nil
}

// ListTurns returns the narration of a battle in play order.
func (r *BattleRepository) ListTurns(ctx context.Context, battleID string) ([]model.TurnRecord, error) {
	query := `
		SELECT round, seq, actor, maneuver, lines
		FROM battle_turns
		WHERE battle_id = $1
		ORDER BY round, seq
	`

	rows, err := r.db.Query(ctx, query, battleID)
	if err != nil {
		return nil, fmt.Errorf("querying turns for battle %s: %w", battleID, err)
	}
	defer rows.Close()

	var turns []model.TurnRecord
	for rows.Next() {
		var t model.TurnRecord
		if err := rows.Scan(&t.Round, &t.Seq, &t.Actor, &t.Maneuver, &t.Lines); err != nil {
			return nil, fmt.Errorf("scanning turn row: %w", err)
		}
		turns = append(turns, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turn rows: %w", err)
	}

	return turns, nil
}
