package move

import (
	"fmt"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/model"
)

// WeaponStrike is a maneuver granted by a weapon: Base damage of the weapon's type
// plus the wielder's STR, aimed like BarehandedBlow.
type WeaponStrike struct {
	Weapon string
	Type   model.DamageType
	Base   int64
}

func (w WeaponStrike) Name() string { return w.Weapon + " Strike" }

func (w WeaponStrike) Describe() string {
	return fmt.Sprintf("Strikes with %s for %d %s plus STR", w.Weapon, w.Base, w.Type)
}

func (WeaponStrike) MPCost() int64 { return 0 }

// Damage returns the strike damage for the given current stats, at least 1.
func (w WeaponStrike) Damage(s model.Stats) model.Damage {
	return model.Damage{Type: w.Type, Amount: max(1, w.Base+s.STR)}
}

func (w WeaponStrike) Execute(self combat.Actor, world combat.World) []*combat.Action {
	target := weakestOpponent(self, world)
	if target == nil {
		return nil
	}
	return []*combat.Action{
		combat.NewAction(self.Pointer(), combat.Attack{Damage: w.Damage(self.CurrentStats())}, target.Pointer()),
	}
}
