package character

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/game/effect"
	"github.com/udisondev/tussle/internal/model"
)

const (
	// DefaultEquipmentCap is the number of items a character may wear at once.
	DefaultEquipmentCap = 3

	// NoParty is the party of a character created without WithParty.
	NoParty = "<no party>"
)

// Character is the combat.Actor implementation: base stats, worn equipment,
// timed effects and live resource pools.
//
// Not safe for concurrent use. A combat owns its roster exclusively.
type Character struct {
	name  string
	owner string
	party string
	base  model.Stats

	equipment []*Equipment
	equipCap  int
	timed     *effect.Tracker
	strategy  Strategy

	hp  int64
	mp  int64
	ap  int64
	vit int64
}

var _ combat.Actor = (*Character)(nil)

// Option configures a Character.
type Option func(*Character)

// WithParty sets the party the character fights for.
func WithParty(party string) Option {
	return func(c *Character) { c.party = party }
}

// WithOwner records the player controlling the character.
func WithOwner(owner string) Option {
	return func(c *Character) { c.owner = owner }
}

// WithEquipmentCap overrides DefaultEquipmentCap.
func WithEquipmentCap(n int) Option {
	return func(c *Character) { c.equipCap = n }
}

// WithStrategy sets how the character picks its maneuver. Defaults to Barehanded.
func WithStrategy(s Strategy) Option {
	return func(c *Character) { c.strategy = s }
}

// New creates a character with every resource at its max.
func New(name string, base model.Stats, opts ...Option) *Character {
	c := &Character{
		name:     name,
		party:    NoParty,
		base:     base,
		equipCap: DefaultEquipmentCap,
		timed:    effect.NewTracker(),
		strategy: Barehanded,
	}
	for _, opt := range opts {
		opt(c)
	}
	gs := c.GameStats()
	c.hp = gs.MHP
	c.mp = gs.MMP
	c.ap = gs.MAP
	c.vit = c.CurrentStats().MaxVIT()
	return c
}

func (c *Character) Name() string           { return c.name }
func (c *Character) Owner() string          { return c.owner }
func (c *Character) Party() string          { return c.party }
func (c *Character) BaseStats() model.Stats { return c.base }
func (c *Character) HP() int64              { return c.hp }
func (c *Character) MP() int64              { return c.mp }
func (c *Character) AP() int64              { return c.ap }
func (c *Character) VIT() int64             { return c.vit }

// Pointer addresses the character alone.
func (c *Character) Pointer() combat.EntityPointer {
	return combat.Characters(c.name)
}

// Equipment returns the worn items in equip order.
func (c *Character) Equipment() []*Equipment {
	return slices.Clone(c.equipment)
}

// TimedEffects returns the active timed effects with their remaining turns.
func (c *Character) TimedEffects() []effect.Timed {
	return c.timed.Active()
}

// Maneuvers returns every maneuver granted by worn equipment.
func (c *Character) Maneuvers() []combat.Maneuver {
	var out []combat.Maneuver
	for _, eq := range c.equipment {
		out = append(out, eq.maneuvers...)
	}
	return out
}

// Reactions returns every reaction granted by worn equipment, in declaration order.
func (c *Character) Reactions() []combat.Reaction {
	var out []combat.Reaction
	for _, eq := range c.equipment {
		out = append(out, eq.reactions...)
	}
	return out
}

// effects returns timed effects followed by equipment effects.
func (c *Character) effects() []effect.Effect {
	out := c.timed.Effects()
	for _, eq := range c.equipment {
		out = append(out, eq.effects...)
	}
	return out
}

// CurrentStats returns the base stats with every active effect applied.
func (c *Character) CurrentStats() model.Stats {
	return effect.CurrentStats(c.base, c.effects())
}

// GameStats derives combat capacities from the current stats and applies derived deltas.
func (c *Character) GameStats() model.GameStats {
	return effect.CurrentGameStats(c.base, c.effects())
}

// MaxVIT returns the VIT cap for the current stats.
func (c *Character) MaxVIT() int64 {
	return c.CurrentStats().MaxVIT()
}

// HPRatio returns HP over max HP. A character without max HP reports 0.
func (c *Character) HPRatio() float64 {
	mhp := c.GameStats().MHP
	if mhp <= 0 {
		return 0
	}
	return float64(c.hp) / float64(mhp)
}

// Equip puts item on. On failure the worn list is unchanged.
func (c *Character) Equip(item *Equipment) error {
	if len(c.equipment) >= c.equipCap {
		return fmt.Errorf("%w: cannot equip more than %d items", ErrEquipmentCap, c.equipCap)
	}
	if !c.CurrentStats().MeetsRequirements(item.requirements) {
		return fmt.Errorf("%w: %s requires %s", ErrRequirementsUnmet, item.name, item.requirements.RequirementString())
	}
	var sameType int
	for _, eq := range c.equipment {
		if eq.kind == item.kind {
			sameType++
		}
	}
	if limit := item.kind.MaxEquipped(); sameType >= limit {
		return fmt.Errorf("%w: cannot equip more than %d %s items", ErrTypeCap, limit, item.kind)
	}
	c.equipment = append(c.equipment, item)
	return nil
}

// PreTurn regenerates HP, MP and AP up to their max.
func (c *Character) PreTurn() {
	gs := c.GameStats()
	c.hp = regen(c.hp, gs.HRG, gs.MHP)
	c.mp = regen(c.mp, gs.MRG, gs.MMP)
	c.ap = regen(c.ap, gs.TAP, gs.MAP)
}

func regen(cur, rate, limit int64) int64 {
	return min(cur+rate, limit)
}

// PostTurn ticks per-turn effects, then advances timed effects and drops the expired ones.
func (c *Character) PostTurn() {
	for _, e := range c.effects() {
		if t, ok := e.(effect.Ticker); ok {
			t.Tick(c)
		}
	}
	for _, e := range c.timed.Decay() {
		slog.Debug("effect expired", "character", c.name, "effect", e.Name())
	}
}

// NextManeuver asks the strategy for this round's maneuver.
func (c *Character) NextManeuver(w combat.World) combat.Maneuver {
	return c.strategy.Choose(c, w)
}

// ApplyDamage runs d through damage modifiers, subtracts the matching defense and
// takes the rest from HP, or from MP for ZAP.
func (c *Character) ApplyDamage(d model.Damage) {
	d = effect.ModifyDamage(d, c.effects())
	gs := c.GameStats()

	var defense int64
	switch d.Type.Category {
	case model.PHY:
		defense = gs.PDF
	case model.MAG:
		defense = gs.MDF
	case model.ZAP:
		defense = model.FloorDiv(gs.MDF, 2)
	}
	amount := max(0, d.Amount-defense)

	if d.Type.Category == model.ZAP {
		c.mp -= amount
	} else {
		c.hp -= amount
	}
}

// ApplyDirectly adds a signed delta to one resource, bypassing defense.
// Positive deltas stop at the resource max.
func (c *Character) ApplyDirectly(u model.CharUnit) {
	gs := c.GameStats()
	switch u.Kind {
	case model.UnitHP:
		c.hp = applyDelta(c.hp, u.Value, gs.MHP)
	case model.UnitMP:
		c.mp = applyDelta(c.mp, u.Value, gs.MMP)
	case model.UnitAP:
		c.ap = applyDelta(c.ap, u.Value, gs.MAP)
	case model.UnitVIT:
		c.vit = applyDelta(c.vit, u.Value, c.MaxVIT())
	}
}

func applyDelta(cur, delta, limit int64) int64 {
	if delta <= 0 {
		return cur + delta
	}
	return max(cur, min(cur+delta, limit))
}

// ApplyTimedEffect attaches e for the given number of turns.
func (c *Character) ApplyTimedEffect(e effect.Effect, turns int64) {
	c.timed.Add(e, turns)
}

// RespondToAction evaluates every granted reaction against a. Accepted reactions
// pay their AP cost, which may push AP below zero, and their MP cost.
func (c *Character) RespondToAction(w combat.World, a *combat.Action) []*combat.Action {
	if c.ap < 0 {
		return nil
	}
	var out []*combat.Action
	for _, r := range c.Reactions() {
		cost := r.MPCost()
		if cost > 0 && c.mp < cost {
			continue
		}
		acts := r.React(c, a, w)
		if len(acts) == 0 {
			continue
		}
		c.ap -= r.APCost()
		if cost > 0 {
			c.mp -= cost
		}
		slog.Debug("reaction accepted",
			"character", c.name,
			"reaction", r.Name(),
			"to", a.String(),
			"ap", c.ap,
			"mp", c.mp)
		out = append(out, acts...)
	}
	return out
}

// String formats the character as "Alf (Red) 737/748 HP".
func (c *Character) String() string {
	return fmt.Sprintf("%s (%s) %d/%d HP", c.name, c.party, c.hp, c.GameStats().MHP)
}
