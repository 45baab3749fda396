package dumbuno

import "errors"

var (
	// ErrInvalidConfig indicates an unplayable game configuration.
	ErrInvalidConfig = errors.New("invalid game configuration")

	// ErrNotDealt indicates that a game was played before hands were dealt.
	ErrNotDealt = errors.New("hands not dealt")
)
