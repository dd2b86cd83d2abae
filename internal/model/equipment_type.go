package model

import (
	"fmt"
	"strings"
)

// EquipmentType is the slot kind of an equipment item.
type EquipmentType uint8

const (
	EquipWeapon EquipmentType = iota
	EquipHead
	EquipChest
	EquipArms
	EquipHands
	EquipFeet
	EquipRing
	EquipAccessory
)

var equipmentShortcodes = [...]string{
	EquipWeapon:    "WPON",
	EquipHead:      "HEAD",
	EquipChest:     "CHST",
	EquipArms:      "ARMS",
	EquipHands:     "HNDS",
	EquipFeet:      "FEET",
	EquipRing:      "RING",
	EquipAccessory: "ACCS",
}

var equipmentMax = [...]int{
	EquipWeapon:    2,
	EquipHead:      1,
	EquipChest:     1,
	EquipArms:      2,
	EquipHands:     2,
	EquipFeet:      2,
	EquipRing:      4,
	EquipAccessory: 2,
}

// MaxEquipped returns how many items of this type one character may wear at once.
func (t EquipmentType) MaxEquipped() int {
	if int(t) < len(equipmentMax) {
		return equipmentMax[t]
	}
	return 0
}

// Shortcode returns the 4-char code of the type.
func (t EquipmentType) Shortcode() string {
	if int(t) < len(equipmentShortcodes) {
		return equipmentShortcodes[t]
	}
	return "????"
}

// String formats the type as "[RING]".
func (t EquipmentType) String() string {
	return "[" + t.Shortcode() + "]"
}

var equipmentAliases = map[string]EquipmentType{
	"weapon":    EquipWeapon,
	"head":      EquipHead,
	"chest":     EquipChest,
	"arms":      EquipArms,
	"hands":     EquipHands,
	"feet":      EquipFeet,
	"ring":      EquipRing,
	"accessory": EquipAccessory,
}

// ParseEquipmentType accepts a type name ("ring") or its shortcode ("RING", "CHST").
func ParseEquipmentType(s string) (EquipmentType, error) {
	key := strings.TrimSpace(s)
	if t, ok := equipmentAliases[strings.ToLower(key)]; ok {
		return t, nil
	}
	for i, code := range equipmentShortcodes {
		if strings.EqualFold(code, key) {
			return EquipmentType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown equipment type %q", s)
}
