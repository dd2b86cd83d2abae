package move

import (
	"fmt"
	"math"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/model"
)

const (
	counterAPCost = 3

	// Reducing incoming damage down to 70% and returning up to 30% are free.
	counterReductionCutoff = 0.7
	counterReturnCutoff    = 0.3

	// floorTolerance keeps decimal thresholds exact, e.g. (0.7-0.5)*10 floors to 2.
	floorTolerance = 1e-9
)

// Counter answers an incoming attack of a matching type by scaling its damage by
// Incoming and striking the attacker back with Outgoing times the original amount.
type Counter struct {
	Filter   model.DamageType
	Incoming float64
	Outgoing float64
}

// NewCounter returns a Counter reacting to attacks covered by filter.
func NewCounter(filter model.DamageType, incoming, outgoing float64) Counter {
	return Counter{Filter: filter, Incoming: incoming, Outgoing: outgoing}
}

func (c Counter) Name() string { return "Counter" }

func (c Counter) Describe() string {
	return fmt.Sprintf("Counter %s: takes %d%%, returns %d%%",
		c.Filter, percent(c.Incoming), percent(c.Outgoing))
}

// MPCost = floor(10*max(0, 0.7-Incoming)) + floor(15*max(0, Outgoing-0.3)).
func (c Counter) MPCost() int64 {
	var cost int64
	if c.Incoming < counterReductionCutoff {
		cost += int64(math.Floor((counterReductionCutoff-c.Incoming)*10 + floorTolerance))
	}
	if c.Outgoing > counterReturnCutoff {
		cost += int64(math.Floor((c.Outgoing-counterReturnCutoff)*15 + floorTolerance))
	}
	return cost
}

func (c Counter) APCost() int64 { return counterAPCost }

// RelevantFor reports whether incoming damage of type dt can be countered.
// ULT damage never can, and a ULT filter never reacts.
func (c Counter) RelevantFor(dt model.DamageType) bool {
	return c.Filter.Covers(dt)
}

// React fires only for an Attack aimed directly at self.
func (c Counter) React(self combat.Actor, a *combat.Action, _ combat.World) []*combat.Action {
	if !a.TargetsCharacter(self.Name()) {
		return nil
	}
	atk, ok := a.Effect.(combat.Attack)
	if !ok || !c.RelevantFor(atk.Damage.Type) {
		return nil
	}

	var out []*combat.Action
	if c.Incoming != 1 {
		out = append(out, combat.NewAction(self.Pointer(), combat.AdjustDamageMul{Factor: c.Incoming}, a.SelfPointer()))
	}
	if c.Outgoing != 0 {
		back := model.Damage{
			Type:   atk.Damage.Type,
			Amount: int64(math.Floor(c.Outgoing * float64(atk.Damage.Amount))),
		}
		out = append(out, combat.NewAction(self.Pointer(), combat.Attack{Damage: back}, a.Source.Clone()))
	}
	return out
}

func percent(f float64) int64 {
	return int64(math.Floor(f*100 + floorTolerance))
}
