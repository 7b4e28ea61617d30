package game

import "errors"

var (
	// ErrDecode wraps every player token decoding failure.
	ErrDecode          = errors.New("invalid player token")
	ErrInvalidPlayerID = errors.New("invalid player id")
	ErrGameNotFound    = errors.New("no handler for game")
	ErrNotBound        = errors.New("game handler has no options")
)
