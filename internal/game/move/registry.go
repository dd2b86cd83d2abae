package move

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/udisondev/tussle/internal/game/combat"
	"github.com/udisondev/tussle/internal/model"
)

var (
	// ErrUnknownMove is returned for an unregistered maneuver or reaction name.
	ErrUnknownMove = errors.New("unknown move")

	// ErrInvalidParam is returned when a move factory cannot parse its params.
	ErrInvalidParam = errors.New("invalid move param")
)

// ManeuverFactory builds a maneuver from string params as they appear in roster files.
type ManeuverFactory func(params map[string]string) (combat.Maneuver, error)

// ReactionFactory builds a reaction from string params.
type ReactionFactory func(params map[string]string) (combat.Reaction, error)

var (
	maneuvers = map[string]ManeuverFactory{}
	reactions = map[string]ReactionFactory{}
)

// RegisterManeuver registers a maneuver factory by name.
func RegisterManeuver(name string, f ManeuverFactory) { maneuvers[name] = f }

// RegisterReaction registers a reaction factory by name.
func RegisterReaction(name string, f ReactionFactory) { reactions[name] = f }

// CreateManeuver builds a maneuver by name.
func CreateManeuver(name string, params map[string]string) (combat.Maneuver, error) {
	f, ok := maneuvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: maneuver %s", ErrUnknownMove, name)
	}
	return f(params)
}

// CreateReaction builds a reaction by name.
func CreateReaction(name string, params map[string]string) (combat.Reaction, error) {
	f, ok := reactions[name]
	if !ok {
		return nil, fmt.Errorf("%w: reaction %s", ErrUnknownMove, name)
	}
	return f(params)
}

func init() {
	RegisterManeuver("BarehandedBlow", func(map[string]string) (combat.Maneuver, error) {
		return BarehandedBlow{}, nil
	})
	RegisterManeuver("WeaponStrike", newWeaponStrike)
	RegisterReaction("Counter", newCounter)
}

// newCounter params: "type" (filter, e.g. "PHY" or "MAG:Fire"), "incoming", "outgoing".
func newCounter(params map[string]string) (combat.Reaction, error) {
	dt, err := model.ParseDamageType(params["type"])
	if err != nil {
		return nil, fmt.Errorf("%w: Counter.type: %v", ErrInvalidParam, err)
	}
	in, err := floatParam(params, "incoming", 1)
	if err != nil {
		return nil, fmt.Errorf("%w: Counter.incoming: %v", ErrInvalidParam, err)
	}
	out, err := floatParam(params, "outgoing", 0)
	if err != nil {
		return nil, fmt.Errorf("%w: Counter.outgoing: %v", ErrInvalidParam, err)
	}
	return NewCounter(dt, in, out), nil
}

// newWeaponStrike params: "weapon" (name), "type", "base".
func newWeaponStrike(params map[string]string) (combat.Maneuver, error) {
	dt, err := model.ParseDamageType(params["type"])
	if err != nil {
		return nil, fmt.Errorf("%w: WeaponStrike.type: %v", ErrInvalidParam, err)
	}
	base, err := strconv.ParseInt(params["base"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: WeaponStrike.base: %v", ErrInvalidParam, err)
	}
	name := params["weapon"]
	if name == "" {
		name = "Weapon"
	}
	return WeaponStrike{Weapon: name, Type: dt, Base: base}, nil
}

func floatParam(params map[string]string, key string, def float64) (float64, error) {
	raw, ok := params[key]
	if !ok {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
