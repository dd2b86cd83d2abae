package combat

import "errors"

var (
	// ErrEmptyRoster is returned when a combat is created without participants.
	ErrEmptyRoster = errors.New("combat has no participants")

	// ErrDuplicateActor is returned when two participants share a name.
	ErrDuplicateActor = errors.New("duplicate participant name")

	// ErrActorNotFound is returned when a participant lookup by name fails.
	ErrActorNotFound = errors.New("participant not found")
)
