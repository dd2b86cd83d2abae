package model

import (
	"fmt"
	"strings"
)

// UnitKind names a live resource pool of a character.
type UnitKind uint8

const (
	UnitHP UnitKind = iota
	UnitMP
	UnitAP
	UnitVIT
)

func (k UnitKind) String() string {
	switch k {
	case UnitHP:
		return "HP"
	case UnitMP:
		return "MP"
	case UnitAP:
		return "AP"
	case UnitVIT:
		return "VIT"
	default:
		return fmt.Sprintf("UnitKind(%d)", uint8(k))
	}
}

// ParseUnitKind parses "hp", "mp", "ap" or "vit".
func ParseUnitKind(s string) (UnitKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HP":
		return UnitHP, nil
	case "MP":
		return UnitMP, nil
	case "AP":
		return UnitAP, nil
	case "VIT":
		return UnitVIT, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// CharUnit is a signed amount of one resource pool.
// Negative values drain the pool.
type CharUnit struct {
	Kind  UnitKind
	Value int64
}

// HP returns a CharUnit of v hit points.
func HP(v int64) CharUnit { return CharUnit{Kind: UnitHP, Value: v} }

// MP returns a CharUnit of v mental points.
func MP(v int64) CharUnit { return CharUnit{Kind: UnitMP, Value: v} }

// AP returns a CharUnit of v action points.
func AP(v int64) CharUnit { return CharUnit{Kind: UnitAP, Value: v} }

// VIT returns a CharUnit of v vitality.
func VIT(v int64) CharUnit { return CharUnit{Kind: UnitVIT, Value: v} }

// String formats the unit as "15 HP".
func (u CharUnit) String() string {
	return fmt.Sprintf("%d %s", u.Value, u.Kind)
}
