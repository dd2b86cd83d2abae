package effect

import (
	"fmt"
	"strconv"
)

// Factory builds an effect from string params as they appear in roster files.
type Factory func(params map[string]string) (Effect, error)

// registry maps effect name → factory function.
// Populated in init().
var registry = map[string]Factory{}

// Register registers an effect factory by name.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Create builds an effect by name using the registered factory.
func Create(name string, params map[string]string) (Effect, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, name)
	}
	return factory(params)
}

func init() {
	Register("StatAdditive", NewStatAdditive)
	Register("DamageResistance", NewDamageResistance)
	Register("DamageOverTime", NewDamageOverTime)
}

func intParam(params map[string]string, key string) (int64, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing %q", key)
	}
	return strconv.ParseInt(raw, 10, 64)
}

func floatParam(params map[string]string, key string) (float64, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing %q", key)
	}
	return strconv.ParseFloat(raw, 64)
}

func invalidParam(effect, key string, err error) error {
	return fmt.Errorf("%w: %s.%s: %v", ErrInvalidParam, effect, key, err)
}
