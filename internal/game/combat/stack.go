package combat

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Solicitor collects the reactions of every participant to an Action entering the stack.
type Solicitor interface {
	RequestReactions(a *Action) []*Action
}

// Roster is the set of characters an ActionStack resolves onto.
type Roster interface {
	Participants() []Actor
}

// ActionStack orders a maneuver and every reaction it provokes.
// Construction only appends, so stack positions stay valid until resolution.
type ActionStack struct {
	actions []*Action
}

// NewActionStack creates an empty stack.
func NewActionStack() *ActionStack {
	return &ActionStack{actions: make([]*Action, 0, 8)}
}

// Build pushes the initiating actions in order. Each push immediately solicits
// reactions, which are built recursively before the next sibling.
func (s *ActionStack) Build(initial []*Action, sol Solicitor) {
	for _, a := range initial {
		s.add(a, sol)
	}
}

func (s *ActionStack) add(a *Action, sol Solicitor) {
	if a.Target.Kind == PointAction && a.Target.Index >= len(s.actions) {
		panic(fmt.Sprintf("combat: action %s targets stack position %d before it exists", a, a.Target.Index))
	}

	a.place(len(s.actions))
	reactions := sol.RequestReactions(a)
	s.actions = append(s.actions, a)

	for _, r := range reactions {
		s.add(r, sol)
	}
}

// Len returns the number of actions currently on the stack.
func (s *ActionStack) Len() int {
	return len(s.actions)
}

// Actions returns the stack bottom to top. The slice is a copy; the Actions are not.
func (s *ActionStack) Actions() []*Action {
	return slices.Clone(s.actions)
}

// Narrate renders every action on its own line, bottom to top.
func (s *ActionStack) Narrate() string {
	lines := make([]string, 0, len(s.actions))
	for _, a := range s.actions {
		lines = append(lines, a.Narrate())
	}
	return strings.Join(lines, "\n")
}

// Brief renders every action in short form, bottom to top.
func (s *ActionStack) Brief() string {
	lines := make([]string, 0, len(s.actions))
	for _, a := range s.actions {
		lines = append(lines, a.String())
	}
	return strings.Join(lines, "\n")
}

type pendingAction struct {
	pos    int
	action *Action
}

// Resolve pops every action LIFO and applies it onto roster. Actions targeting
// other actions are held back and applied to their target when it is popped.
// The stack is empty afterwards.
func (s *ActionStack) Resolve(roster Roster) {
	if len(s.actions) == 0 {
		return
	}

	var pending []pendingAction
	current := len(s.actions) - 1

	for len(s.actions) > 0 {
		a := s.actions[len(s.actions)-1]
		s.actions[len(s.actions)-1] = nil
		s.actions = s.actions[:len(s.actions)-1]

		for _, p := range pending {
			if p.pos == current {
				p.action.Effect.applyToAction(a)
			}
		}

		switch a.Target.Kind {
		case PointCharacter:
			for _, actor := range roster.Participants() {
				if a.Target.TargetsCharacter(actor.Name()) {
					a.Effect.applyToActor(actor)
				}
			}
		case PointAction:
			pending = append(pending, pendingAction{pos: a.Target.Index, action: a})
		case PointEffect, PointEnvironment:
			slog.Debug("action target has no resolution path", "action", a.String(), "kind", a.Target.Kind.String())
		}

		if current > 0 {
			current--
		}
	}
}
