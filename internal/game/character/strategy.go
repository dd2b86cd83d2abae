package character

import (
	"fmt"
	"strings"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/game/move"
)

// Strategy picks the maneuver a character performs this round.
type Strategy interface {
	Choose(c *Character, w combat.World) combat.Maneuver
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(c *Character, w combat.World) combat.Maneuver

func (f StrategyFunc) Choose(c *Character, w combat.World) combat.Maneuver { return f(c, w) }

// Barehanded always throws a BarehandedBlow. It is the default.
var Barehanded Strategy = StrategyFunc(func(*Character, combat.World) combat.Maneuver {
	return move.BarehandedBlow{}
})

// FirstGranted uses the first equipment-granted maneuver the character can afford,
// falling back to BarehandedBlow.
var FirstGranted Strategy = StrategyFunc(func(c *Character, _ combat.World) combat.Maneuver {
	for _, m := range c.Maneuvers() {
		if m.MPCost() <= c.MP() {
			return m
		}
	}
	return move.BarehandedBlow{}
})

var strategies = map[string]Strategy{
	"barehanded":    Barehanded,
	"first_granted": FirstGranted,
}

// ParseStrategy resolves a strategy by name. An empty name yields Barehanded.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return Barehanded, nil
	}
	s, ok := strategies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
	return s, nil
}
