package combat

import (
	"fmt"
	"strings"
)

// Action is one atomic event on an ActionStack.
// Source, Effect and Target stay mutable until the Action is resolved.
type Action struct {
	Source EntityPointer
	Effect ActionEffect
	Target EntityPointer

	pos    int
	placed bool
}

// NewAction builds an Action that is not yet on a stack.
func NewAction(source EntityPointer, eff ActionEffect, target EntityPointer) *Action {
	return &Action{Source: source, Effect: eff, Target: target}
}

// Position returns the stack position of a and whether a has been pushed.
func (a *Action) Position() (int, bool) {
	return a.pos, a.placed
}

// SelfPointer returns a pointer addressing a on its stack.
// Calling it on an Action that was never pushed is a programming error and panics.
func (a *Action) SelfPointer() EntityPointer {
	if !a.placed {
		panic("combat: SelfPointer on an action that is not on a stack")
	}
	return ActionAt(a.pos)
}

// TargetsCharacter reports whether a directly targets the character called name.
func (a *Action) TargetsCharacter(name string) bool {
	return a.Target.TargetsCharacter(name)
}

// Narrate renders a as a sentence, e.g. "Alf strikes Bert for 32 [PHY] Slash".
func (a *Action) Narrate() string {
	parts := []string{
		a.Source.Narrate(),
		a.Effect.Verb(),
		a.Target.Narrate(),
		a.Effect.Preposition(),
		a.Effect.Value(),
	}
	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return strings.Join(words, " ")
}

// String renders a briefly, e.g. "[Alf] ATK on Bert".
func (a *Action) String() string {
	return fmt.Sprintf("[%s] %s on %s", a.Source, a.Effect.ShortName(), a.Target)
}

func (a *Action) place(pos int) {
	a.pos = pos
	a.placed = true
}
