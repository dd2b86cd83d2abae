package effect

import (
	"fmt"
	"math"

	"github.com/udisondev/tussle/internal/model"
)

// ResistanceOrder places resistances after all additive effects.
const ResistanceOrder = 10

// DamageResistance scales incoming damage of a matching type by (1 - Factor).
// A negative Factor is a vulnerability. ULT damage is never affected.
type DamageResistance struct {
	Base
	Type   model.DamageType
	Factor float64
}

// NewDamageResistance builds a DamageResistance from registry params.
// Params: "type" (e.g. "PHY:Slash"), "factor" (float, 0.25 = 25% RES, -0.5 = 50% VUL).
func NewDamageResistance(params map[string]string) (Effect, error) {
	dt, err := model.ParseDamageType(params["type"])
	if err != nil {
		return nil, invalidParam("DamageResistance", "type", err)
	}
	factor, err := floatParam(params, "factor")
	if err != nil {
		return nil, invalidParam("DamageResistance", "factor", err)
	}
	return DamageResistance{Type: dt, Factor: factor}, nil
}

func (e DamageResistance) Name() string { return "DamageResistance" }

// Describe formats the effect, e.g. "25% RES to [PHY] Slash".
func (e DamageResistance) Describe() string {
	kind := "RES"
	if e.Factor <= 0 {
		kind = "VUL"
	}
	points := int64(math.Floor(math.Abs(e.Factor)*100 + 1e-9))
	return fmt.Sprintf("%d%% %s to %s", points, kind, e.Type)
}

func (e DamageResistance) Order() int { return ResistanceOrder }

// ModifyDamage applies the resistance if d falls under e.Type.
func (e DamageResistance) ModifyDamage(d model.Damage) model.Damage {
	if !e.Type.Covers(d.Type) {
		return d
	}
	scaled := int64(math.Floor(float64(d.Amount) * (1 - e.Factor)))
	d.Amount = max(0, scaled)
	return d
}
