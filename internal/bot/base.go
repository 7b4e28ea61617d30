package bot

import (
	"sync/atomic"

	"telegram-bot-framework/pkg/telegram"
)

// Base implements Bot. Concrete bots embed it and add the Hooks methods.
type Base struct {
	user    atomic.Pointer[telegram.User]
	options Options
	client  Client
}

// NewBase creates a Base for the given options and client.
func NewBase(opts Options, client Client) *Base {
	return &Base{options: opts, client: client}
}

func (b *Base) User() telegram.User {
	if u := b.user.Load(); u != nil {
		return *u
	}
	return telegram.User{}
}

// SetUser records the bot's identity, as returned by getMe.
func (b *Base) SetUser(u telegram.User) {
	b.user.Store(&u)
}

func (b *Base) Options() Options {
	return b.options
}

func (b *Base) Client() Client {
	return b.client
}
