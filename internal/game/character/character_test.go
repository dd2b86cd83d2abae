package character

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/game/effect"
	"github.com/udisondev/tussle/internal/game/move"
	"github.com/udisondev/tussle/internal/model"
)

func newNine(name string, opts ...Option) *Character {
	return New(name, model.Uniform(9), opts...)
}

func TestNew_StartsAtMax(t *testing.T) {
	c := newNine("alf")

	assert.Equal(t, int64(748), c.HP())
	assert.Equal(t, int64(108), c.MP())
	assert.Equal(t, int64(12), c.AP())
	assert.Equal(t, int64(1215), c.VIT())
	assert.Equal(t, NoParty, c.Party())
	assert.Equal(t, 1.0, c.HPRatio())
	assert.Equal(t, combat.Characters("alf"), c.Pointer())
}

func TestPreTurn_RegenCapsAtMax(t *testing.T) {
	c := newNine("alf")
	c.hp, c.mp, c.ap = 100, 100, -4

	c.PreTurn()
	assert.Equal(t, int64(122), c.hp)
	assert.Equal(t, int64(108), c.mp, "capped")
	assert.Equal(t, int64(-1), c.ap, "still in debt")

	for range 10 {
		c.PreTurn()
	}
	assert.Equal(t, int64(12), c.ap)
	assert.LessOrEqual(t, c.hp, int64(748))
}

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name   string
		damage model.Damage
		wantHP int64
		wantMP int64
	}{
		{"physical minus pdf", model.Damage{Type: model.Physical("Slash"), Amount: 32}, 737, 108},
		{"magical minus mdf", model.Damage{Type: model.Magical("Fire"), Amount: 30}, 739, 108},
		{"zap hits mp with half mdf", model.Damage{Type: model.Zap(""), Amount: 30}, 748, 88},
		{"ultimate ignores defense", model.Damage{Type: model.Ultimate(), Amount: 30}, 718, 108},
		{"floored at zero", model.Damage{Type: model.Physical(""), Amount: 5}, 748, 108},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newNine("alf")
			c.ApplyDamage(tt.damage)
			assert.Equal(t, tt.wantHP, c.HP())
			assert.Equal(t, tt.wantMP, c.MP())
		})
	}
}

func TestApplyDamage_Resistance(t *testing.T) {
	c := newNine("alf")
	shield := NewEquipment("Buckler", model.EquipArms, model.Stats{})
	shield.AddEffect(effect.DamageResistance{Type: model.Physical(""), Factor: 0.5})
	require.NoError(t, c.Equip(shield))

	c.ApplyDamage(model.Damage{Type: model.Physical("Slash"), Amount: 60})
	assert.Equal(t, int64(748-(30-21)), c.HP())

	c.ApplyDamage(model.Damage{Type: model.Ultimate(), Amount: 10})
	assert.Equal(t, int64(748-9-10), c.HP(), "ULT is never resisted")
}

func TestApplyDirectly(t *testing.T) {
	c := newNine("alf")
	c.ApplyDirectly(model.HP(-50))
	assert.Equal(t, int64(698), c.HP())

	c.ApplyDirectly(model.HP(500))
	assert.Equal(t, int64(748), c.HP(), "heals stop at max")

	c.ApplyDirectly(model.AP(-20))
	assert.Equal(t, int64(-8), c.AP())

	c.ApplyDirectly(model.VIT(-15))
	assert.Equal(t, int64(1200), c.VIT())

	c.ApplyDirectly(model.MP(-8))
	c.ApplyDirectly(model.MP(3))
	assert.Equal(t, int64(103), c.MP())
}

func TestStatsWithEffects(t *testing.T) {
	c := newNine("alf")
	plain := c.GameStats()

	ring := NewEquipment("Ring of Might", model.EquipRing, model.Stats{})
	ring.AddEffect(effect.StatAdditive{Stat: model.CharStat{Kind: model.StatSTR, Value: 3}})
	ring.AddEffect(effect.StatAdditive{Stat: model.CharStat{Kind: model.StatPDF, Value: 4}})
	require.NoError(t, c.Equip(ring))

	assert.Equal(t, int64(12), c.CurrentStats().STR)
	assert.Equal(t, int64(9), c.BaseStats().STR)

	want := model.Stats{DEX: 9, STR: 12, GRT: 9, WIL: 9, CHA: 9, INT: 9}.GameStats()
	want.PDF += 4
	assert.Equal(t, want, c.GameStats())
	assert.NotEqual(t, plain, c.GameStats())
	assert.Equal(t, c.GameStats(), c.GameStats(), "derivation is idempotent")
}

func TestEquip(t *testing.T) {
	t.Run("slot cap", func(t *testing.T) {
		c := newNine("alf", WithEquipmentCap(2))
		require.NoError(t, c.Equip(NewEquipment("a", model.EquipRing, model.Stats{})))
		require.NoError(t, c.Equip(NewEquipment("b", model.EquipRing, model.Stats{})))

		err := c.Equip(NewEquipment("c", model.EquipRing, model.Stats{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEquipmentCap))
		assert.Contains(t, err.Error(), "cannot equip more than 2 items")
		assert.Len(t, c.Equipment(), 2)
	})

	t.Run("requirements", func(t *testing.T) {
		c := newNine("alf")
		heavy := NewEquipment("Greataxe", model.EquipWeapon, model.Stats{STR: 12, DEX: 5})

		err := c.Equip(heavy)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRequirementsUnmet))
		assert.Empty(t, c.Equipment())
	})

	t.Run("requirements met by effects", func(t *testing.T) {
		c := newNine("alf")
		c.ApplyTimedEffect(effect.StatAdditive{Stat: model.CharStat{Kind: model.StatSTR, Value: 3}}, 2)
		assert.NoError(t, c.Equip(NewEquipment("Greataxe", model.EquipWeapon, model.Stats{STR: 12})))
	})

	t.Run("type cap", func(t *testing.T) {
		c := newNine("alf")
		require.NoError(t, c.Equip(NewEquipment("Cap", model.EquipHead, model.Stats{})))

		err := c.Equip(NewEquipment("Helm", model.EquipHead, model.Stats{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTypeCap))
		require.Len(t, c.Equipment(), 1)
		assert.Equal(t, "Cap", c.Equipment()[0].Name())
	})
}

func TestPostTurn_TimedEffects(t *testing.T) {
	c := newNine("alf")
	boost := effect.StatAdditive{Stat: model.CharStat{Kind: model.StatDEX, Value: 2}}
	c.ApplyTimedEffect(boost, 2)

	assert.Equal(t, int64(11), c.CurrentStats().DEX)
	c.PostTurn()
	assert.Equal(t, int64(11), c.CurrentStats().DEX)
	c.PostTurn()
	assert.Equal(t, int64(9), c.CurrentStats().DEX)
	assert.Empty(t, c.TimedEffects())
}

func TestPostTurn_CancelAndTick(t *testing.T) {
	c := newNine("alf")

	var cancel bool
	c.ApplyTimedEffect(effect.WithCancel(
		effect.StatAdditive{Stat: model.CharStat{Kind: model.StatDEX, Value: 2}},
		func() bool { return cancel }), 10)
	c.ApplyTimedEffect(effect.DamageOverTime{Damage: model.Damage{Type: model.Ultimate(), Amount: 7}}, 2)

	c.PostTurn()
	assert.Equal(t, int64(741), c.HP())
	assert.Len(t, c.TimedEffects(), 2)

	cancel = true
	c.PostTurn()
	assert.Equal(t, int64(734), c.HP(), "ticks before it expires")
	assert.Empty(t, c.TimedEffects())

	c.PostTurn()
	assert.Equal(t, int64(734), c.HP())
}

// sentinel is a reaction that always answers with one marker action.
type sentinel struct {
	mp, ap int64
}

func (sentinel) Name() string     { return "Sentinel" }
func (sentinel) Describe() string { return "" }
func (s sentinel) MPCost() int64  { return s.mp }
func (s sentinel) APCost() int64  { return s.ap }

func (sentinel) React(self combat.Actor, a *combat.Action, _ combat.World) []*combat.Action {
	return []*combat.Action{combat.NewAction(self.Pointer(), combat.Cancel{}, a.Source)}
}

func TestRespondToAction(t *testing.T) {
	incoming := combat.NewAction(combat.Characters("bert"),
		combat.Attack{Damage: model.Damage{Type: model.Physical("Slash"), Amount: 32}}, combat.Characters("alf"))

	t.Run("all matching reactions fire and pay", func(t *testing.T) {
		c := newNine("alf")
		eq := NewEquipment("Charm", model.EquipAccessory, model.Stats{})
		eq.AddReaction(sentinel{mp: 5, ap: 3})
		eq.AddReaction(sentinel{ap: 10})
		require.NoError(t, c.Equip(eq))

		out := c.RespondToAction(nil, incoming)
		assert.Len(t, out, 2)
		assert.Equal(t, int64(-1), c.AP(), "AP may go into debt")
		assert.Equal(t, int64(103), c.MP())

		assert.Empty(t, c.RespondToAction(nil, incoming), "no reactions while in debt")
	})

	t.Run("unaffordable mp is skipped", func(t *testing.T) {
		c := newNine("alf")
		eq := NewEquipment("Charm", model.EquipAccessory, model.Stats{})
		eq.AddReaction(sentinel{mp: 500, ap: 3})
		require.NoError(t, c.Equip(eq))

		assert.Empty(t, c.RespondToAction(nil, incoming))
		assert.Equal(t, int64(12), c.AP())
	})

	t.Run("not applicable costs nothing", func(t *testing.T) {
		c := newNine("alf")
		eq := NewEquipment("Gauntlet", model.EquipHands, model.Stats{})
		eq.AddReaction(move.NewCounter(model.Magical(""), 0, 1))
		require.NoError(t, c.Equip(eq))

		assert.Empty(t, c.RespondToAction(nil, incoming))
		assert.Equal(t, int64(12), c.AP())
		assert.Equal(t, int64(108), c.MP())
	})
}

func TestStrategies(t *testing.T) {
	c := newNine("alf")
	assert.Equal(t, move.BarehandedBlow{}, c.NextManeuver(nil))

	c = newNine("alf", WithStrategy(FirstGranted))
	assert.Equal(t, move.BarehandedBlow{}, c.NextManeuver(nil), "falls back without granted maneuvers")

	spear := NewEquipment("Spear", model.EquipWeapon, model.Stats{})
	strike := move.WeaponStrike{Weapon: "Spear", Type: model.Physical("Pierce"), Base: 6}
	spear.AddManeuver(strike)
	require.NoError(t, c.Equip(spear))
	assert.Equal(t, strike, c.NextManeuver(nil))

	s, err := ParseStrategy("first_granted")
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = ParseStrategy("berserk")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}
