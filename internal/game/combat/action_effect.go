package combat

import (
	"fmt"
	"math"

	"github.com/udisondev/tussle/internal/game/effect"
	"github.com/udisondev/tussle/internal/model"
)

// ActionEffect is the payload of an Action.
// Attack, Heal and GiveTimedEffect act on characters; the remaining variants act on
// other Actions on the stack. The set is closed.
type ActionEffect interface {
	// ShortName is a 3-char code, e.g. "ATK".
	ShortName() string
	// Verb narrates the effect in third person, e.g. "strikes".
	Verb() string
	// Preposition links the target to the value, e.g. "for".
	Preposition() string
	// Value renders the effect parameter, e.g. "32 [PHY] Strike".
	Value() string

	applyToActor(a Actor)
	applyToAction(target *Action)
}

// Attack deals damage to the targeted characters.
type Attack struct {
	Damage model.Damage
}

// Heal applies a signed resource delta to the targeted characters, bypassing defense.
type Heal struct {
	Unit model.CharUnit
}

// GiveTimedEffect attaches an effect to the targeted characters for Turns turns.
type GiveTimedEffect struct {
	Effect effect.Effect
	Turns  int64
}

// Cancel turns the targeted Action into Canceled.
type Cancel struct{}

// Canceled is an inert Action payload.
type Canceled struct{}

// AdjustDamageAbs adds Delta to the damage of the targeted Attack.
type AdjustDamageAbs struct {
	Delta int64
}

// AdjustDamageMul multiplies the damage of the targeted Attack by Factor, rounding down.
type AdjustDamageMul struct {
	Factor float64
}

// ChangeTarget rewrites the target of the targeted Action.
type ChangeTarget struct {
	Target EntityPointer
}

func (Attack) ShortName() string      { return "ATK" }
func (e Attack) Verb() string         { return e.Damage.Type.Verb() }
func (Attack) Preposition() string    { return "for" }
func (e Attack) Value() string        { return e.Damage.String() }
func (e Attack) applyToActor(a Actor) { a.ApplyDamage(e.Damage) }
func (Attack) applyToAction(*Action)  {}

func (Heal) ShortName() string      { return "HEA" }
func (Heal) Verb() string           { return "heals" }
func (Heal) Preposition() string    { return "for" }
func (e Heal) Value() string        { return e.Unit.String() }
func (e Heal) applyToActor(a Actor) { a.ApplyDirectly(e.Unit) }
func (Heal) applyToAction(*Action)  {}

func (GiveTimedEffect) ShortName() string   { return "EFF" }
func (GiveTimedEffect) Verb() string        { return "affects" }
func (GiveTimedEffect) Preposition() string { return "with" }

func (e GiveTimedEffect) Value() string {
	return fmt.Sprintf("%s for %d turns", e.Effect.Describe(), e.Turns)
}

func (e GiveTimedEffect) applyToActor(a Actor) { a.ApplyTimedEffect(e.Effect, e.Turns) }
func (GiveTimedEffect) applyToAction(*Action)  {}

func (Cancel) ShortName() string   { return "CCL" }
func (Cancel) Verb() string        { return "cancels" }
func (Cancel) Preposition() string { return "" }
func (Cancel) Value() string       { return "" }
func (Cancel) applyToActor(Actor)  {}
func (Cancel) applyToAction(target *Action) {
	target.Effect = Canceled{}
}

func (Canceled) ShortName() string     { return "XXX" }
func (Canceled) Verb() string          { return "--" }
func (Canceled) Preposition() string   { return "" }
func (Canceled) Value() string         { return "" }
func (Canceled) applyToActor(Actor)    {}
func (Canceled) applyToAction(*Action) {}

func (AdjustDamageAbs) ShortName() string { return "ADA" }

func (e AdjustDamageAbs) Verb() string {
	if e.Delta > 0 {
		return "increases the damage of"
	}
	return "decreases the damage of"
}

func (AdjustDamageAbs) Preposition() string { return "by" }

func (e AdjustDamageAbs) Value() string {
	return fmt.Sprintf("%d", abs(e.Delta))
}

func (AdjustDamageAbs) applyToActor(Actor) {}

func (e AdjustDamageAbs) applyToAction(target *Action) {
	if atk, ok := target.Effect.(Attack); ok {
		atk.Damage.Amount += e.Delta
		target.Effect = atk
	}
}

func (AdjustDamageMul) ShortName() string { return "ADM" }

func (e AdjustDamageMul) Verb() string {
	if e.Factor > 1 {
		return "increases the damage of"
	}
	return "decreases the damage of"
}

func (AdjustDamageMul) Preposition() string { return "by" }

// Value renders the change in percent points, e.g. factor 0.7 → "30%".
func (e AdjustDamageMul) Value() string {
	points := int64(math.Floor(math.Abs(1-e.Factor)*100 + 1e-9))
	return fmt.Sprintf("%d%%", points)
}

func (AdjustDamageMul) applyToActor(Actor) {}

func (e AdjustDamageMul) applyToAction(target *Action) {
	if atk, ok := target.Effect.(Attack); ok {
		atk.Damage.Amount = int64(math.Floor(float64(atk.Damage.Amount) * e.Factor))
		target.Effect = atk
	}
}

func (ChangeTarget) ShortName() string   { return "CHT" }
func (ChangeTarget) Verb() string        { return "changes the target of" }
func (ChangeTarget) Preposition() string { return "to" }
func (e ChangeTarget) Value() string     { return e.Target.Narrate() }
func (ChangeTarget) applyToActor(Actor)  {}
func (e ChangeTarget) applyToAction(target *Action) {
	target.Target = e.Target.Clone()
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
