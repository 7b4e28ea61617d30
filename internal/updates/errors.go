package updates

import "errors"

var (
	ErrNotInitialized = errors.New("update manager is not initialized")
	ErrUnknownMode    = errors.New("unknown delivery mode")
	ErrHookFailed     = errors.New("bot hook failed")
	ErrHandlerPanic   = errors.New("handler panicked")
)
