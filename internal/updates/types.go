package updates

import "time"

const (
	DefaultPollTimeout  = 30 * time.Second
	DefaultPollInterval = 3 * time.Second
)

// PollOptions tune the long-poll loop.
type PollOptions struct {
	// Timeout is the long-poll wait passed to getUpdates.
	Timeout time.Duration
	// Interval is the pause between drained poll passes.
	Interval time.Duration
	// Limit caps the batch size; zero uses the server default.
	Limit          int
	AllowedUpdates []string
}

// WithDefaults fills zero fields with the defaults.
func (o PollOptions) WithDefaults() PollOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultPollTimeout
	}
	if o.Interval <= 0 {
		o.Interval = DefaultPollInterval
	}
	return o
}
