package combat

import (
	"github.com/udisondev/tussle/internal/game/effect"
	"github.com/udisondev/tussle/internal/model"
)

// Actor is a combat participant.
//
// Resource pools may change while an Actor is being read during stack construction
// (reactions pay AP and MP), so implementations keep them as plain mutable fields
// behind these methods.
type Actor interface {
	Name() string
	Party() string

	HP() int64
	MP() int64
	AP() int64
	VIT() int64

	// CurrentStats returns the base attributes with every active effect applied.
	CurrentStats() model.Stats
	// GameStats derives the combat capacities from CurrentStats.
	GameStats() model.GameStats
	// HPRatio returns HP divided by max HP.
	HPRatio() float64
	// Pointer addresses this actor as a single character.
	Pointer() EntityPointer

	// PreTurn regenerates HP, MP and AP up to their max.
	PreTurn()
	// PostTurn advances timed effects and drops the expired ones.
	PostTurn()
	// NextManeuver selects the maneuver for this round.
	NextManeuver(w World) Maneuver

	ApplyDamage(d model.Damage)
	ApplyDirectly(u model.CharUnit)
	ApplyTimedEffect(e effect.Effect, turns int64)

	// RespondToAction returns the reactions this actor commits to a, paying their costs.
	RespondToAction(w World, a *Action) []*Action
}

// World is the read view of a combat that maneuvers and reactions decide on.
type World interface {
	Participants() []Actor
	Find(name string) (Actor, bool)
}

// Move is the common description of maneuvers and reactions.
type Move interface {
	Name() string
	Describe() string
	MPCost() int64
}

// Maneuver is the one action-initiating move an actor performs per round.
type Maneuver interface {
	Move
	Execute(self Actor, w World) []*Action
}

// Reaction is a conditional, costed response to an Action entering the stack.
// React returns nil when the reaction does not apply.
type Reaction interface {
	Move
	APCost() int64
	React(self Actor, a *Action, w World) []*Action
}
