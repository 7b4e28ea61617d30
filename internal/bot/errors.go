package bot

import "errors"

// ErrNoGameOptions is wrapped by the ConfigurationError returned when a game
// handler runs for a bot without any configured games.
var ErrNoGameOptions = errors.New("no game options are configured")

// ErrGameNotConfigured is wrapped when no game entry matches a short name.
var ErrGameNotConfigured = errors.New("game is not configured")

// ConfigurationError reports invalid or missing bot configuration.
type ConfigurationError struct {
	Message string
	// Hint suggests how to fix the configuration.
	Hint string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Hint == "" {
		return "configuration error: " + e.Message
	}
	return "configuration error: " + e.Message + " (" + e.Hint + ")"
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
