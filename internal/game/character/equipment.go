package character

import (
	"fmt"
	"slices"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/game/effect"
	"github.com/udisondev/tussle/internal/model"
)

// Equipment is an item that grants effects, maneuvers and reactions while worn.
type Equipment struct {
	name         string
	kind         model.EquipmentType
	requirements model.Stats

	effects   []effect.Effect
	maneuvers []combat.Maneuver
	reactions []combat.Reaction
}

// NewEquipment creates an item with no capabilities.
// requirements is the minimum current stats a wearer needs.
func NewEquipment(name string, kind model.EquipmentType, requirements model.Stats) *Equipment {
	return &Equipment{name: name, kind: kind, requirements: requirements}
}

func (e *Equipment) Name() string                 { return e.name }
func (e *Equipment) Type() model.EquipmentType    { return e.kind }
func (e *Equipment) Requirements() model.Stats    { return e.requirements }
func (e *Equipment) Effects() []effect.Effect     { return slices.Clone(e.effects) }
func (e *Equipment) Maneuvers() []combat.Maneuver { return slices.Clone(e.maneuvers) }
func (e *Equipment) Reactions() []combat.Reaction { return slices.Clone(e.reactions) }

// AddEffect grants a permanent effect to the wearer.
func (e *Equipment) AddEffect(eff effect.Effect) {
	e.effects = append(e.effects, eff)
}

// AddManeuver grants a maneuver to the wearer.
func (e *Equipment) AddManeuver(m combat.Maneuver) {
	e.maneuvers = append(e.maneuvers, m)
}

// AddReaction grants a reaction to the wearer. Reactions are evaluated in the order added.
func (e *Equipment) AddReaction(r combat.Reaction) {
	e.reactions = append(e.reactions, r)
}

// String formats the item as "Buckler [ARMS]".
func (e *Equipment) String() string {
	return fmt.Sprintf("%s %s", e.name, e.kind)
}
