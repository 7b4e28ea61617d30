package bot

// Options configure one bot instance.
type Options struct {
	// APIToken is the token issued by BotFather.
	APIToken string
	// WebhookURL may contain {bot} and {token} placeholders.
	WebhookURL string
	// CertificatePath points at a PEM public key uploaded with the webhook.
	CertificatePath string
	// SecretToken is sent back by Telegram in X-Telegram-Bot-Api-Secret-Token.
	SecretToken string
	Games       []GameOptions
}

// GameOptions configure one HTML5 game. URL and ScoresURL may contain
// {bot}, {token} and {game} placeholders.
type GameOptions struct {
	ShortName string
	URL       string
	ScoresURL string
}
