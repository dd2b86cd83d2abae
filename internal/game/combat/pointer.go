package combat

import (
	"fmt"
	"slices"
	"strings"
)

// PointerKind selects the resolution path of an EntityPointer.
type PointerKind uint8

const (
	// PointCharacter addresses one or more roster members by name.
	PointCharacter PointerKind = iota
	// PointAction addresses an Action by its stack position.
	PointAction
	// PointEffect addresses an effect by its holder and name.
	PointEffect
	// PointEnvironment addresses the surroundings of the combat.
	PointEnvironment
)

func (k PointerKind) String() string {
	switch k {
	case PointCharacter:
		return "character"
	case PointAction:
		return "action"
	case PointEffect:
		return "effect"
	case PointEnvironment:
		return "environment"
	default:
		return fmt.Sprintf("PointerKind(%d)", uint8(k))
	}
}

// EntityPointer is a symbolic address of an Action source or target.
// Only the fields belonging to Kind are meaningful.
type EntityPointer struct {
	Kind PointerKind

	// Names of the addressed characters (PointCharacter).
	Names []string
	// Index is the stack position of the addressed Action (PointAction).
	Index int
	// Holder and EffectName identify an effect (PointEffect).
	Holder     *EntityPointer
	EffectName string
}

// Characters points at the named roster members.
func Characters(names ...string) EntityPointer {
	return EntityPointer{Kind: PointCharacter, Names: names}
}

// ActionAt points at the Action on stack position i.
func ActionAt(i int) EntityPointer {
	return EntityPointer{Kind: PointAction, Index: i}
}

// EffectOf points at the effect called name held by holder.
func EffectOf(holder EntityPointer, name string) EntityPointer {
	h := holder.Clone()
	return EntityPointer{Kind: PointEffect, Holder: &h, EffectName: name}
}

// Environment points at the combat surroundings.
func Environment() EntityPointer {
	return EntityPointer{Kind: PointEnvironment}
}

// TargetsCharacter reports whether p addresses the character called name.
func (p EntityPointer) TargetsCharacter(name string) bool {
	return p.Kind == PointCharacter && slices.Contains(p.Names, name)
}

// Clone returns a deep copy of p.
func (p EntityPointer) Clone() EntityPointer {
	out := p
	out.Names = slices.Clone(p.Names)
	if p.Holder != nil {
		h := p.Holder.Clone()
		out.Holder = &h
	}
	return out
}

// Narrate renders p for a narration line, e.g. "the group of A, B".
func (p EntityPointer) Narrate() string {
	switch p.Kind {
	case PointCharacter:
		if len(p.Names) == 1 {
			return p.Names[0]
		}
		return "the group of " + strings.Join(p.Names, ", ")
	case PointAction:
		return "a previous action"
	case PointEffect:
		return fmt.Sprintf("an effect (%s)", p.EffectName)
	default:
		return "the environment"
	}
}

// String renders p compactly, as used in brief stack listings.
func (p EntityPointer) String() string {
	switch p.Kind {
	case PointCharacter:
		return strings.Join(p.Names, ", ")
	case PointAction:
		return fmt.Sprintf("prev: %d", p.Index)
	case PointEffect:
		return "effect: " + p.EffectName
	default:
		return "the environment"
	}
}
