package bot

import (
	"fmt"
	"os"
	"strings"
)

// MinTokenLength is the shortest API token accepted.
const MinTokenLength = 25

// Validate checks the options before the bot is activated.
func (o Options) Validate() error {
	if strings.TrimSpace(o.APIToken) == "" {
		return &ConfigurationError{Message: "API token is required", Hint: "Set bot.api_token"}
	}

	if len(o.APIToken) < MinTokenLength {
		return &ConfigurationError{
			Message: fmt.Sprintf("API token is too short (%d characters, want at least %d)", len(o.APIToken), MinTokenLength),
			Hint:    "Check bot's token with BotFather",
		}
	}

	if strings.TrimSpace(o.WebhookURL) != "" && !strings.HasPrefix(strings.ToLower(o.WebhookURL), "https://") {
		return &ConfigurationError{Message: fmt.Sprintf("webhook url %q is not a HTTPS url", o.WebhookURL)}
	}

	if strings.TrimSpace(o.CertificatePath) != "" {
		if _, err := os.Stat(o.CertificatePath); err != nil {
			return &ConfigurationError{
				Message: fmt.Sprintf("certificate file %q does not exist", o.CertificatePath),
				Err:     err,
			}
		}
	}

	for i, g := range o.Games {
		if strings.TrimSpace(g.ShortName) == "" || strings.TrimSpace(g.URL) == "" {
			return &ConfigurationError{
				Message: fmt.Sprintf("game options #%d invalid", i),
				Hint:    "Both short_name and url are required",
			}
		}
	}

	return nil
}
