package character

import "errors"

var (
	// ErrEquipmentCap is returned when every equipment slot of a character is taken.
	ErrEquipmentCap = errors.New("equipment cap reached")

	// ErrRequirementsUnmet is returned when current stats are below an item's requirements.
	ErrRequirementsUnmet = errors.New("requirements not met")

	// ErrTypeCap is returned when a character already wears the maximum items of one type.
	ErrTypeCap = errors.New("equipment type cap reached")

	// ErrUnknownStrategy is returned by ParseStrategy for an unregistered name.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
