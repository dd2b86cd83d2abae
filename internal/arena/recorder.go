package arena

import (
	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/model"
)

// Recorder is a combat.TurnLogger that keeps the narration of every stack
// until it is flushed.
type Recorder struct {
	pending []model.TurnRecord
	total   int
}

var _ combat.TurnLogger = (*Recorder)(nil)

// ManeuverStack records one built stack, bottom to top.
func (r *Recorder) ManeuverStack(info combat.TurnInfo, stack *combat.ActionStack) {
	actions := stack.Actions()
	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		lines = append(lines, a.Narrate())
	}
	r.pending = append(r.pending, model.TurnRecord{
		Round:    info.Round,
		Seq:      info.Seq,
		Actor:    info.Actor,
		Maneuver: info.Maneuver,
		Lines:    lines,
	})
	r.total++
}

// Flush returns the turns recorded since the previous Flush.
func (r *Recorder) Flush() []model.TurnRecord {
	out := r.pending
	r.pending = nil
	return out
}

// Total returns how many turns were recorded overall.
func (r *Recorder) Total() int {
	return r.total
}
