package effect

import (
	"log/slog"

	"github.com/udisondev/tussle/internal/model"
)

// DamageOverTime deals fixed damage to its holder every turn it is active.
// The damage goes through the holder's normal defense.
type DamageOverTime struct {
	Base
	Damage model.Damage
}

// NewDamageOverTime builds a DamageOverTime from registry params.
// Params: "type" (e.g. "MAG:Poison"), "amount" (integer per tick).
func NewDamageOverTime(params map[string]string) (Effect, error) {
	dt, err := model.ParseDamageType(params["type"])
	if err != nil {
		return nil, invalidParam("DamageOverTime", "type", err)
	}
	amount, err := intParam(params, "amount")
	if err != nil {
		return nil, invalidParam("DamageOverTime", "amount", err)
	}
	return DamageOverTime{Damage: model.Damage{Type: dt, Amount: amount}}, nil
}

func (e DamageOverTime) Name() string { return "DamageOverTime" }

// Describe formats the effect, e.g. "12 [MAG] Poison per turn".
func (e DamageOverTime) Describe() string { return e.Damage.String() + " per turn" }

func (e DamageOverTime) Order() int { return DefaultOrder }

// Tick applies the damage to holder.
func (e DamageOverTime) Tick(holder Holder) {
	if e.Damage.Amount <= 0 {
		return
	}
	holder.ApplyDamage(e.Damage)
	slog.Debug("dot tick", "target", holder.Name(), "damage", e.Damage.String())
}
