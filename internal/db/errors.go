package db

import "errors"

// ErrBattleNotFound is returned when updating a battle that was never created.
var ErrBattleNotFound = errors.New("battle not found")
