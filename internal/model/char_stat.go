package model

import (
	"fmt"
	"strings"
)

// StatKind names a single base or derived stat.
type StatKind uint8

const (
	StatDEX StatKind = iota
	StatSTR
	StatGRT
	StatWIL
	StatCHA
	StatINT

	// Derived stats. Deltas on these are applied after GameStats derivation.
	StatMHP
	StatMMP
	StatMAP
	StatTAP
	StatMVE
	StatPDF
	StatMDF
	StatMOB
	StatHRG
	StatMRG
)

var statNames = [...]string{
	StatDEX: "DEX",
	StatSTR: "STR",
	StatGRT: "GRT",
	StatWIL: "WIL",
	StatCHA: "CHA",
	StatINT: "INT",
	StatMHP: "MHP",
	StatMMP: "MMP",
	StatMAP: "MAP",
	StatTAP: "TAP",
	StatMVE: "MVE",
	StatPDF: "PDF",
	StatMDF: "MDF",
	StatMOB: "MOB",
	StatHRG: "HRG",
	StatMRG: "MRG",
}

func (k StatKind) String() string {
	if int(k) < len(statNames) {
		return statNames[k]
	}
	return fmt.Sprintf("StatKind(%d)", uint8(k))
}

// IsBase reports whether k is one of the six base attributes.
func (k StatKind) IsBase() bool {
	return k <= StatINT
}

// ParseStatKind parses a stat code such as "dex" or "PDF".
func ParseStatKind(s string) (StatKind, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range statNames {
		if name == up {
			return StatKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", s)
}

// CharStat is a signed delta on one stat.
type CharStat struct {
	Kind  StatKind
	Value int64
}

// ApplyToStats adds the delta to s if it targets a base attribute.
func (c CharStat) ApplyToStats(s *Stats) {
	switch c.Kind {
	case StatDEX:
		s.DEX += c.Value
	case StatSTR:
		s.STR += c.Value
	case StatGRT:
		s.GRT += c.Value
	case StatWIL:
		s.WIL += c.Value
	case StatCHA:
		s.CHA += c.Value
	case StatINT:
		s.INT += c.Value
	}
}

// ApplyToGameStats adds the delta to g if it targets a derived stat.
func (c CharStat) ApplyToGameStats(g *GameStats) {
	switch c.Kind {
	case StatMHP:
		g.MHP += c.Value
	case StatMMP:
		g.MMP += c.Value
	case StatMAP:
		g.MAP += c.Value
	case StatTAP:
		g.TAP += c.Value
	case StatMVE:
		g.MVE += c.Value
	case StatPDF:
		g.PDF += c.Value
	case StatMDF:
		g.MDF += c.Value
	case StatMOB:
		g.MOB += c.Value
	case StatHRG:
		g.HRG += c.Value
	case StatMRG:
		g.MRG += c.Value
	}
}

// String formats the delta as "+5 DEX" or "-3 PDF".
func (c CharStat) String() string {
	return fmt.Sprintf("%+d %s", c.Value, c.Kind)
}
