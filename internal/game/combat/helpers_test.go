package combat

import (
	"fmt"

	"github.com/udisondev/tussle/internal/game/effect"
	"github.com/udisondev/tussle/internal/model"
)

// journal records engine calls across fake actors in order.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// stubActor is a minimal Actor with fixed stats and scripted behavior.
type stubActor struct {
	name  string
	party string
	mob   int64
	hp    int64
	mp    int64
	ap    int64

	log      *journal
	maneuver Maneuver
	// react is asked for every action entering the stack.
	react func(self *stubActor, a *Action) []*Action
}

func newStub(j *journal, name, party string, mob int64) *stubActor {
	return &stubActor{name: name, party: party, mob: mob, hp: 100, log: j}
}

func (s *stubActor) Name() string               { return s.name }
func (s *stubActor) Party() string              { return s.party }
func (s *stubActor) HP() int64                  { return s.hp }
func (s *stubActor) MP() int64                  { return s.mp }
func (s *stubActor) AP() int64                  { return s.ap }
func (s *stubActor) VIT() int64                 { return 0 }
func (s *stubActor) CurrentStats() model.Stats  { return model.Stats{} }
func (s *stubActor) GameStats() model.GameStats { return model.GameStats{MHP: 100, MOB: s.mob} }
func (s *stubActor) HPRatio() float64           { return float64(s.hp) / 100 }
func (s *stubActor) Pointer() EntityPointer     { return Characters(s.name) }

func (s *stubActor) PreTurn()  { s.log.add("pre %s", s.name) }
func (s *stubActor) PostTurn() { s.log.add("post %s", s.name) }

func (s *stubActor) NextManeuver(World) Maneuver {
	if s.maneuver != nil {
		return s.maneuver
	}
	return idle{}
}

func (s *stubActor) ApplyDamage(d model.Damage) {
	s.hp -= d.Amount
	s.log.add("%s takes %d", s.name, d.Amount)
}

func (s *stubActor) ApplyDirectly(u model.CharUnit) {
	s.log.add("%s gets %s", s.name, u)
}

func (s *stubActor) ApplyTimedEffect(e effect.Effect, turns int64) {
	s.log.add("%s gains %s for %d", s.name, e.Describe(), turns)
}

func (s *stubActor) RespondToAction(_ World, a *Action) []*Action {
	s.log.add("ask %s", s.name)
	if s.react == nil {
		return nil
	}
	return s.react(s, a)
}

// idle produces no actions.
type idle struct{}

func (idle) Name() string                   { return "Idle" }
func (idle) Describe() string               { return "does nothing" }
func (idle) MPCost() int64                  { return 0 }
func (idle) Execute(Actor, World) []*Action { return nil }

// scripted executes a fixed function.
type scripted struct {
	fn func(self Actor, w World) []*Action
}

func (scripted) Name() string                            { return "Scripted" }
func (scripted) Describe() string                        { return "test maneuver" }
func (scripted) MPCost() int64                           { return 0 }
func (m scripted) Execute(self Actor, w World) []*Action { return m.fn(self, w) }

// staticRoster resolves onto a fixed list of actors.
type staticRoster []Actor

func (r staticRoster) Participants() []Actor { return r }

// noReactions never reacts.
type noReactions struct{}

func (noReactions) RequestReactions(*Action) []*Action { return nil }

// scriptedSolicitor answers by the short name of the incoming effect.
type scriptedSolicitor func(a *Action) []*Action

func (f scriptedSolicitor) RequestReactions(a *Action) []*Action { return f(a) }

func hit(from, to string, amount int64) *Action {
	return NewAction(Characters(from), Attack{Damage: model.Damage{Type: model.Physical("Slash"), Amount: amount}}, Characters(to))
}
