package model

// HandlingResult tells the dispatcher whether to keep offering an update to
// later handlers.
type HandlingResult int

const (
	// Continue lets later matching handlers run.
	Continue HandlingResult = iota
	// Handled stops the chain for this update.
	Handled
)

func (r HandlingResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Handled:
		return "handled"
	}
	return "unknown"
}

// DeliveryMode is how updates reach the bot.
type DeliveryMode string

const (
	ModePolling DeliveryMode = "polling"
	ModeWebhook DeliveryMode = "webhook"
)
