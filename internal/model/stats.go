package model

import (
	"fmt"
	"strings"
)

// Stats holds the six base attributes of a combatant.
// Derived capacities are computed by GameStats and never stored.
type Stats struct {
	DEX int64 `yaml:"dex"`
	STR int64 `yaml:"str"`
	GRT int64 `yaml:"grt"`
	WIL int64 `yaml:"wil"`
	CHA int64 `yaml:"cha"`
	INT int64 `yaml:"int"`
}

// Uniform returns Stats with every attribute set to v.
func Uniform(v int64) Stats {
	return Stats{DEX: v, STR: v, GRT: v, WIL: v, CHA: v, INT: v}
}

// MaxHP = 100 + 12*((GRT+WIL)*2 + STR+CHA)
func (s Stats) MaxHP() int64 {
	return 100 + 12*((s.GRT+s.WIL)*2+s.STR+s.CHA)
}

// MaxMP = 2*((INT+CHA)*2 + WIL+DEX)
func (s Stats) MaxMP() int64 {
	return 2 * ((s.INT+s.CHA)*2 + s.WIL + s.DEX)
}

// MaxAP = floor(0.2*((DEX+INT+WIL)*2 + GRT))
func (s Stats) MaxAP() int64 {
	return FloorDiv((s.DEX+s.INT+s.WIL)*2+s.GRT, 5)
}

// TurnAP = 1 + floor(0.05*((DEX+INT)*2 + GRT+WIL))
func (s Stats) TurnAP() int64 {
	return 1 + FloorDiv((s.DEX+s.INT)*2+s.GRT+s.WIL, 20)
}

// MoveDistance is not derived from attributes yet and is always zero.
func (s Stats) MoveDistance() int64 {
	return 0
}

// PhysDefense = floor(1.2*(GRT+STR))
func (s Stats) PhysDefense() int64 {
	return FloorDiv(6*(s.GRT+s.STR), 5)
}

// MagDefense = floor(1.2*(WIL+CHA))
func (s Stats) MagDefense() int64 {
	return FloorDiv(6*(s.WIL+s.CHA), 5)
}

// Mobility = floor(1.2*(DEX+INT))
func (s Stats) Mobility() int64 {
	return FloorDiv(6*(s.DEX+s.INT), 5)
}

// HPRegen = 1 + floor(0.6*(2*GRT+WIL+STR))
func (s Stats) HPRegen() int64 {
	return 1 + FloorDiv(3*(2*s.GRT+s.WIL+s.STR), 5)
}

// MPRegen = 1 + floor(0.33*(2*WIL+CHA+INT))
func (s Stats) MPRegen() int64 {
	return 1 + FloorDiv(33*(2*s.WIL+s.CHA+s.INT), 100)
}

// MaxVIT = 15*(4*GRT+3*WIL+STR+CHA)
func (s Stats) MaxVIT() int64 {
	return 15 * (4*s.GRT + 3*s.WIL + s.STR + s.CHA)
}

// GameStats derives the full set of combat capacities from s.
func (s Stats) GameStats() GameStats {
	return GameStats{
		MHP: s.MaxHP(),
		MMP: s.MaxMP(),
		MAP: s.MaxAP(),
		TAP: s.TurnAP(),
		MVE: s.MoveDistance(),
		PDF: s.PhysDefense(),
		MDF: s.MagDefense(),
		MOB: s.Mobility(),
		HRG: s.HPRegen(),
		MRG: s.MPRegen(),
	}
}

// MeetsRequirements reports whether every attribute of s is at least the
// matching attribute of req.
func (s Stats) MeetsRequirements(req Stats) bool {
	return s.DEX >= req.DEX && s.STR >= req.STR && s.GRT >= req.GRT &&
		s.WIL >= req.WIL && s.CHA >= req.CHA && s.INT >= req.INT
}

// RequirementString lists the non-zero attributes, e.g. "5 DEX, 2 INT".
func (s Stats) RequirementString() string {
	parts := make([]string, 0, 6)
	for _, e := range s.entries() {
		if e.value > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", e.value, e.kind))
		}
	}
	return strings.Join(parts, ", ")
}

type statEntry struct {
	kind  StatKind
	value int64
}

func (s Stats) entries() [6]statEntry {
	return [6]statEntry{
		{StatDEX, s.DEX},
		{StatSTR, s.STR},
		{StatGRT, s.GRT},
		{StatWIL, s.WIL},
		{StatCHA, s.CHA},
		{StatINT, s.INT},
	}
}

// GameStats is the derived stat block a character fights with.
type GameStats struct {
	MHP int64 // max HP
	MMP int64 // max MP
	MAP int64 // max AP
	TAP int64 // AP gained per turn
	MVE int64 // movement distance per turn
	PDF int64 // physical defense
	MDF int64 // magical defense
	MOB int64 // mobility
	HRG int64 // HP regen
	MRG int64 // MP regen
}

// FloorDiv divides rounding toward negative infinity.
// Base stats may go negative under debuffs, so plain integer division is not enough.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
