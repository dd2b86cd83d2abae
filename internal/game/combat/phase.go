package combat

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"
)

// Round phases.
const (
	PhaseTurnStart     = "turn_start"
	PhasePreTurn       = "pre_turn"
	PhaseResolution    = "resolution"
	PhasePostTurn      = "post_turn"
	PhaseRoundComplete = "round_complete"
)

const (
	eventBegin    = "begin"
	eventResolve  = "resolve"
	eventSettle   = "settle"
	eventComplete = "complete"
	eventNext     = "next"
)

// newRoundMachine builds the phase cycle
// TurnStart → PreTurn → Resolution → PostTurn → RoundComplete → TurnStart.
func newRoundMachine() *fsm.FSM {
	return fsm.NewFSM(
		PhaseTurnStart,
		fsm.Events{
			{Name: eventBegin, Src: []string{PhaseTurnStart}, Dst: PhasePreTurn},
			{Name: eventResolve, Src: []string{PhasePreTurn}, Dst: PhaseResolution},
			{Name: eventSettle, Src: []string{PhaseResolution}, Dst: PhasePostTurn},
			{Name: eventComplete, Src: []string{PhasePostTurn}, Dst: PhaseRoundComplete},
			{Name: eventNext, Src: []string{PhaseRoundComplete}, Dst: PhaseTurnStart},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				slog.Debug("round phase", "from", e.Src, "to", e.Dst)
			},
		},
	)
}
