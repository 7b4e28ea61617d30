package bot

import (
	"fmt"
	"strings"
)

const (
	PlaceholderBot   = "{bot}"
	PlaceholderToken = "{token}"
	PlaceholderGame  = "{game}"
)

// ResolveURL substitutes {bot} and {token} in template. The result is a new
// string; template is never modified.
func ResolveURL(template, botUsername, token string) string {
	return strings.NewReplacer(
		PlaceholderBot, botUsername,
		PlaceholderToken, token,
	).Replace(template)
}

// ResolveGameURL substitutes {bot}, {token} and {game} in template.
func ResolveGameURL(template, botUsername, token, gameShortName string) string {
	return strings.NewReplacer(
		PlaceholderBot, botUsername,
		PlaceholderToken, token,
		PlaceholderGame, gameShortName,
	).Replace(template)
}

// Resolve returns a copy of o with every URL template resolved.
func (o GameOptions) Resolve(botUsername, token string) GameOptions {
	return GameOptions{
		ShortName: o.ShortName,
		URL:       ResolveGameURL(o.URL, botUsername, token, o.ShortName),
		ScoresURL: ResolveGameURL(o.ScoresURL, botUsername, token, o.ShortName),
	}
}

// FindGame picks the game entry matching shortName case-insensitively.
// The returned options are not resolved yet.
func FindGame(games []GameOptions, shortName string) (GameOptions, error) {
	if games == nil {
		return GameOptions{}, &ConfigurationError{Message: "no game options are configured", Err: ErrNoGameOptions}
	}

	for _, g := range games {
		if !strings.EqualFold(g.ShortName, shortName) {
			continue
		}
		if strings.TrimSpace(g.ShortName) == "" || strings.TrimSpace(g.URL) == "" || strings.TrimSpace(g.ScoresURL) == "" {
			return GameOptions{}, &ConfigurationError{
				Message: fmt.Sprintf("invalid game options for %q", shortName),
				Hint:    "short_name, url and scores_url are required",
			}
		}
		return g, nil
	}

	return GameOptions{}, &ConfigurationError{
		Message: fmt.Sprintf("no game options are configured for game %q", shortName),
		Err:     ErrGameNotConfigured,
	}
}
