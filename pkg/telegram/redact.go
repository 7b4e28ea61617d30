package telegram

import (
	"regexp"
	"strings"
)

const redacted = "<redacted>"

// tokenPattern matches the "<bot id>:<secret>" shape of Bot API tokens.
var tokenPattern = regexp.MustCompile(`\d+:[A-Za-z0-9_-]{20,}`)

// RedactToken hides anything shaped like a bot token in s.
func RedactToken(s string) string {
	return tokenPattern.ReplaceAllString(s, redacted)
}

func (b *Bot) redact(s string) string {
	if b.token != "" {
		s = strings.ReplaceAll(s, b.token, redacted)
	}
	return RedactToken(s)
}
