package handler

import "errors"

var (
	ErrNilHandler           = errors.New("handler is nil")
	ErrDuplicateGameHandler = errors.New("duplicate game handler")
	ErrNotCommand           = errors.New("update is not a command")
)
