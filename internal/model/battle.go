package model

import "time"

// BattleRecord is the persisted summary of one battle.
type BattleRecord struct {
	ID                string
	RosterFingerprint string
	StartedAt         time.Time
	FinishedAt        time.Time
	Rounds            int

	// Winner is the only party left standing, empty for a draw or a round-capped battle.
	Winner string
}

// TurnRecord is the narration of one actor's stack within a round.
type TurnRecord struct {
	Round    int
	Seq      int
	Actor    string
	Maneuver string
	Lines    []string
}
