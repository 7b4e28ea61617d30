package handler

import (
	"fmt"
	"strings"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/pkg/telegram"
)

// Registry is an ordered, immutable list of handlers.
type Registry struct {
	handlers []Handler
}

// NewRegistry keeps handlers in the given order. Two game handlers may not
// share a short name.
func NewRegistry(handlers ...Handler) (*Registry, error) {
	seen := make(map[string]struct{})
	list := make([]Handler, 0, len(handlers))

	for i, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("handler #%d: %w", i, ErrNilHandler)
		}
		if g, ok := h.(GameHandler); ok {
			key := strings.ToLower(g.ShortName())
			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateGameHandler, g.ShortName())
			}
			seen[key] = struct{}{}
		}
		list = append(list, h)
	}

	return &Registry{handlers: list}, nil
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// Handlers returns a copy of the handler list in registration order.
func (r *Registry) Handlers() []Handler {
	out := make([]Handler, len(r.handlers))
	copy(out, r.handlers)
	return out
}

// Match returns the handlers that accept u, in registration order.
func (r *Registry) Match(b bot.Bot, u telegram.Update) []Handler {
	var matched []Handler
	for _, h := range r.handlers {
		if h.CanHandle(b, u) {
			matched = append(matched, h)
		}
	}
	return matched
}

// FindGameHandler returns the game handler registered for shortName,
// compared case-insensitively.
func (r *Registry) FindGameHandler(shortName string) (GameHandler, bool) {
	if strings.TrimSpace(shortName) == "" {
		return nil, false
	}
	for _, h := range r.handlers {
		if g, ok := h.(GameHandler); ok && strings.EqualFold(g.ShortName(), shortName) {
			return g, true
		}
	}
	return nil, false
}
