package effect

import "errors"

var (
	// ErrUnknownEffect is returned by Create for an unregistered effect name.
	ErrUnknownEffect = errors.New("unknown effect")

	// ErrInvalidParam is returned when an effect factory cannot parse its params.
	ErrInvalidParam = errors.New("invalid effect param")
)
