package model

import (
	"fmt"
	"strings"
)

// DamageCategory is the main class of a damage instance.
type DamageCategory uint8

const (
	// PHY is reduced by physical defense.
	PHY DamageCategory = iota
	// MAG is reduced by magical defense.
	MAG
	// ZAP drains MP instead of HP and is reduced by half the magical defense.
	ZAP
	// ULT cannot be defended, resisted or countered.
	ULT
)

func (c DamageCategory) String() string {
	switch c {
	case PHY:
		return "PHY"
	case MAG:
		return "MAG"
	case ZAP:
		return "ZAP"
	case ULT:
		return "ULT"
	default:
		return fmt.Sprintf("DamageCategory(%d)", uint8(c))
	}
}

// DamageType is a category plus an optional subtype such as "Slash" or "Fire".
// ULT has no subtype.
type DamageType struct {
	Category DamageCategory
	Subtype  string
}

// Physical returns PHY damage of the given subtype.
func Physical(subtype string) DamageType { return DamageType{Category: PHY, Subtype: subtype} }

// Magical returns MAG damage of the given subtype.
func Magical(subtype string) DamageType { return DamageType{Category: MAG, Subtype: subtype} }

// Zap returns ZAP damage of the given subtype.
func Zap(subtype string) DamageType { return DamageType{Category: ZAP, Subtype: subtype} }

// Ultimate returns ULT damage.
func Ultimate() DamageType { return DamageType{Category: ULT} }

// Covers reports whether an incoming damage type falls under this filter.
// ULT never matches in either position. An empty subtype matches the whole category.
func (t DamageType) Covers(incoming DamageType) bool {
	if incoming.Category == ULT || t.Category == ULT {
		return false
	}
	if t.Category != incoming.Category {
		return false
	}
	return t.Subtype == "" || t.Subtype == incoming.Subtype
}

// Verb narrates the damage, e.g. "strikes" for PHY Slash.
func (t DamageType) Verb() string {
	switch t.Category {
	case PHY:
		switch t.Subtype {
		case "Pierce":
			return "stabs"
		case "Slash":
			return "strikes"
		case "Blunt":
			return "pummels"
		}
		return "attacks"
	case MAG:
		switch t.Subtype {
		case "Fire":
			return "burns"
		case "Ice":
			return "freezes"
		}
		return "casts a spell attack on"
	case ZAP:
		return "zaps"
	default:
		return "obliterates"
	}
}

// String formats the type as "[PHY] Slash" or "ULTIMATE".
func (t DamageType) String() string {
	if t.Category == ULT {
		return "ULTIMATE"
	}
	return fmt.Sprintf("[%s] %s", t.Category, t.Subtype)
}

// ParseDamageType parses "PHY", "PHY:Slash", "mag:Fire" or "ULT".
func ParseDamageType(s string) (DamageType, error) {
	cat, sub, _ := strings.Cut(strings.TrimSpace(s), ":")
	var t DamageType
	switch strings.ToUpper(cat) {
	case "PHY":
		t = Physical(sub)
	case "MAG":
		t = Magical(sub)
	case "ZAP":
		t = Zap(sub)
	case "ULT", "ULTIMATE":
		if sub != "" {
			return DamageType{}, fmt.Errorf("damage type %q: ULT has no subtype", s)
		}
		return Ultimate(), nil
	default:
		return DamageType{}, fmt.Errorf("unknown damage type %q", s)
	}
	return t, nil
}

// Damage is a typed amount of damage.
type Damage struct {
	Type   DamageType
	Amount int64
}

// String formats the damage as "32 [PHY] Strike".
func (d Damage) String() string {
	return fmt.Sprintf("%d %s", d.Amount, d.Type)
}
