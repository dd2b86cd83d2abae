package effect

import (
	"github.com/udisondev/tussle/internal/model"
)

// cancelable wraps an effect with an early-end predicate.
type cancelable struct {
	Effect
	cancel func() bool
}

// WithCancel returns e with an additional per-turn cancel predicate.
// The wrapped effect keeps its damage and tick behavior.
func WithCancel(e Effect, cancel func() bool) Effect {
	return &cancelable{Effect: e, cancel: cancel}
}

// CancelSelf fires if either the predicate or the wrapped effect asks to end.
func (c *cancelable) CancelSelf() bool {
	if c.cancel != nil && c.cancel() {
		return true
	}
	if inner, ok := c.Effect.(Canceler); ok {
		return inner.CancelSelf()
	}
	return false
}

func (c *cancelable) ModifyDamage(d model.Damage) model.Damage {
	if m, ok := c.Effect.(DamageModifier); ok {
		return m.ModifyDamage(d)
	}
	return d
}

func (c *cancelable) Tick(holder Holder) {
	if t, ok := c.Effect.(Ticker); ok {
		t.Tick(holder)
	}
}
