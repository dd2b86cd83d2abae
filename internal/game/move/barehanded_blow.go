package move

import (
	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/model"
)

// BarehandedBlow is the always-available fallback maneuver: a single physical strike
// on the weakest opponent.
type BarehandedBlow struct{}

func (BarehandedBlow) Name() string { return "Barehanded Blow" }

func (BarehandedBlow) Describe() string {
	return "When nothing else helps, your body is a weapon, too. A meager move, except in the hands of the exceptionally physically capable."
}

func (BarehandedBlow) MPCost() int64 { return 0 }

// Damage returns the blow damage for the given current stats:
// max(1, floor(0.45*((DEX+STR)*3 + GRT+INT))).
func (BarehandedBlow) Damage(s model.Stats) model.Damage {
	raw := (s.DEX+s.STR)*3 + s.GRT + s.INT
	amount := max(1, model.FloorDiv(9*raw, 20))
	return model.Damage{Type: model.Physical("Strike"), Amount: amount}
}

// Execute targets the opponent with the lowest HP ratio. Ties go to the earlier roster
// position. Without opponents it does nothing.
func (b BarehandedBlow) Execute(self combat.Actor, w combat.World) []*combat.Action {
	target := weakestOpponent(self, w)
	if target == nil {
		return nil
	}
	return []*combat.Action{
		combat.NewAction(self.Pointer(), combat.Attack{Damage: b.Damage(self.CurrentStats())}, target.Pointer()),
	}
}

func weakestOpponent(self combat.Actor, w combat.World) combat.Actor {
	var best combat.Actor
	var bestRatio float64
	for _, a := range w.Participants() {
		if a.Party() == self.Party() {
			continue
		}
		r := a.HPRatio()
		if best == nil || r < bestRatio {
			best, bestRatio = a, r
		}
	}
	return best
}
