package combat

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/looplab/fsm"
)

// Combat owns a roster of actors split into parties and advances it one round at a time.
// It keeps processing rounds regardless of how many parties are still standing.
//
// Not safe for concurrent use. Independent combats may run in parallel.
type Combat struct {
	participants []Actor
	byName       map[string]Actor
	round        int
	phase        *fsm.FSM
}

// New creates a combat over participants in roster order.
func New(participants ...Actor) (*Combat, error) {
	if len(participants) == 0 {
		return nil, ErrEmptyRoster
	}
	byName := make(map[string]Actor, len(participants))
	for _, p := range participants {
		if _, dup := byName[p.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateActor, p.Name())
		}
		byName[p.Name()] = p
	}
	return &Combat{
		participants: slices.Clone(participants),
		byName:       byName,
		phase:        newRoundMachine(),
	}, nil
}

// Participants returns every actor in roster order.
func (c *Combat) Participants() []Actor {
	return slices.Clone(c.participants)
}

// Find returns the participant called name.
func (c *Combat) Find(name string) (Actor, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Get is Find for callers that treat a missing participant as an error.
func (c *Combat) Get(name string) (Actor, error) {
	a, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrActorNotFound, name)
	}
	return a, nil
}

// Round returns the number of rounds processed so far.
func (c *Combat) Round() int {
	return c.round
}

// Phase returns the current round phase.
func (c *Combat) Phase() string {
	return c.phase.Current()
}

// TurnOrder returns the participants sorted by ascending current mobility.
// Ties keep roster order.
func (c *Combat) TurnOrder() []Actor {
	order := slices.Clone(c.participants)
	mob := make(map[string]int64, len(order))
	for _, a := range order {
		mob[a.Name()] = a.GameStats().MOB
	}
	sort.SliceStable(order, func(i, j int) bool {
		return mob[order[i].Name()] < mob[order[j].Name()]
	})
	return order
}

// RequestReactions asks every participant, least mobile first, to respond to a.
// The most mobile actor is asked last and its reactions end up on top of the stack,
// so it has the last word. Soliciting most mobile first ("reverse turn order") would hand
// the last word to the slowest actor instead; do not flip this.
func (c *Combat) RequestReactions(a *Action) []*Action {
	var reactions []*Action
	for _, actor := range c.TurnOrder() {
		reactions = append(reactions, actor.RespondToAction(c, a)...)
	}
	return reactions
}

// StandingParties returns the parties that still have a member with HP above zero,
// in order of first appearance in the roster.
func (c *Combat) StandingParties() []string {
	var parties []string
	for _, a := range c.participants {
		if a.HP() > 0 && !slices.Contains(parties, a.Party()) {
			parties = append(parties, a.Party())
		}
	}
	return parties
}

// ProcessTurn advances exactly one round: regen for everyone, one maneuver per actor in
// ascending mobility, then effect decay. logger may be nil.
func (c *Combat) ProcessTurn(logger TurnLogger) error {
	ctx := context.Background()

	if err := c.phase.Event(ctx, eventBegin); err != nil {
		return fmt.Errorf("starting round %d: %w", c.round+1, err)
	}
	c.round++

	order := c.TurnOrder()
	slog.Debug("turn order", "round", c.round, "order", names(order))

	for _, a := range order {
		a.PreTurn()
	}

	if err := c.phase.Event(ctx, eventResolve); err != nil {
		return fmt.Errorf("round %d: entering resolution: %w", c.round, err)
	}

	for seq, a := range order {
		maneuver := a.NextManeuver(c)
		if maneuver == nil {
			slog.Warn("actor has no maneuver, skipping turn", "round", c.round, "actor", a.Name())
			continue
		}

		stack := NewActionStack()
		stack.Build(maneuver.Execute(a, c), c)

		if logger != nil {
			logger.ManeuverStack(TurnInfo{
				Round:    c.round,
				Seq:      seq,
				Actor:    a.Name(),
				Maneuver: maneuver.Name(),
			}, stack)
		}

		stack.Resolve(c)
	}

	if err := c.phase.Event(ctx, eventSettle); err != nil {
		return fmt.Errorf("round %d: entering post turn: %w", c.round, err)
	}

	for _, a := range order {
		a.PostTurn()
	}

	if err := c.phase.Event(ctx, eventComplete); err != nil {
		return fmt.Errorf("round %d: completing: %w", c.round, err)
	}
	if err := c.phase.Event(ctx, eventNext); err != nil {
		return fmt.Errorf("round %d: resetting: %w", c.round, err)
	}
	return nil
}

func names(actors []Actor) []string {
	out := make([]string, 0, len(actors))
	for _, a := range actors {
		out = append(out, a.Name())
	}
	return out
}
