package effect

import (
	"cmp"
	"slices"

	"github.com/udisondev/tussle/internal/model"
)

// DefaultOrder is the resolution priority of plain additive effects.
const DefaultOrder = 1

// Effect is a passive modifier held by a character, either timed or granted by equipment.
// Effects resolve in ascending Order.
type Effect interface {
	Name() string
	Describe() string
	Order() int
	ApplyToStats(s *model.Stats)
	ApplyToGameStats(g *model.GameStats)
}

// Canceler is implemented by timed effects that may end before their duration runs out.
// CancelSelf is checked once per turn in post_turn.
type Canceler interface {
	CancelSelf() bool
}

// DamageModifier is implemented by effects that rewrite incoming damage before defense applies.
type DamageModifier interface {
	ModifyDamage(d model.Damage) model.Damage
}

// Ticker is implemented by effects that act on their holder once per turn.
type Ticker interface {
	Tick(holder Holder)
}

// Holder is the view of a character a Ticker acts on.
type Holder interface {
	Name() string
	ApplyDamage(d model.Damage)
	ApplyDirectly(u model.CharUnit)
}

// Base provides no-op stat hooks for effects that do not touch stats.
type Base struct{}

func (Base) ApplyToStats(*model.Stats)         {}
func (Base) ApplyToGameStats(*model.GameStats) {}

// Sorted returns a copy of effects ordered by ascending Order.
// Effects with equal order keep their relative position.
func Sorted(effects []Effect) []Effect {
	out := slices.Clone(effects)
	slices.SortStableFunc(out, func(a, b Effect) int {
		return cmp.Compare(a.Order(), b.Order())
	})
	return out
}

// CurrentStats applies every effect to base in resolution order.
func CurrentStats(base model.Stats, effects []Effect) model.Stats {
	s := base
	for _, e := range Sorted(effects) {
		e.ApplyToStats(&s)
	}
	return s
}

// CurrentGameStats derives GameStats from the effect-modified attributes and then
// applies derived-stat deltas, again in resolution order.
func CurrentGameStats(base model.Stats, effects []Effect) model.GameStats {
	sorted := Sorted(effects)
	s := base
	for _, e := range sorted {
		e.ApplyToStats(&s)
	}
	gs := s.GameStats()
	for _, e := range sorted {
		e.ApplyToGameStats(&gs)
	}
	return gs
}

// ModifyDamage runs d through every DamageModifier in effects, in resolution order.
func ModifyDamage(d model.Damage, effects []Effect) model.Damage {
	for _, e := range Sorted(effects) {
		if m, ok := e.(DamageModifier); ok {
			d = m.ModifyDamage(d)
		}
	}
	return d
}
