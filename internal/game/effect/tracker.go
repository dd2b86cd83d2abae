package effect

// Timed is an effect with a number of remaining turns.
type Timed struct {
	Effect    Effect
	Remaining int64
}

// Tracker holds the timed effects of one character.
// Not safe for concurrent use; a combat owns its roster exclusively.
type Tracker struct {
	timed []*Timed
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{timed: make([]*Timed, 0, 4)}
}

// Add attaches e for the given number of turns.
func (t *Tracker) Add(e Effect, turns int64) {
	t.timed = append(t.timed, &Timed{Effect: e, Remaining: turns})
}

// Effects returns the active timed effects in attach order.
func (t *Tracker) Effects() []Effect {
	out := make([]Effect, 0, len(t.timed))
	for _, te := range t.timed {
		out = append(out, te.Effect)
	}
	return out
}

// Active returns a snapshot of the timed effects with their remaining turns.
func (t *Tracker) Active() []Timed {
	out := make([]Timed, 0, len(t.timed))
	for _, te := range t.timed {
		out = append(out, *te)
	}
	return out
}

// Len returns the number of active timed effects.
func (t *Tracker) Len() int {
	return len(t.timed)
}

// Decay decrements every remaining-turn counter and drops effects that reached zero
// or whose cancel predicate fired. Returns the dropped effects.
func (t *Tracker) Decay() []Effect {
	var expired []Effect
	kept := t.timed[:0]
	for _, te := range t.timed {
		te.Remaining--
		if te.Remaining <= 0 || canceled(te.Effect) {
			expired = append(expired, te.Effect)
			continue
		}
		kept = append(kept, te)
	}
	clear(t.timed[len(kept):])
	t.timed = kept
	return expired
}

func canceled(e Effect) bool {
	c, ok := e.(Canceler)
	return ok && c.CancelSelf()
}
