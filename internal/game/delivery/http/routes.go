package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/middleware"
)

// RegisterRoutes mounts GET and POST at the path of every game's resolved
// scores URL. It returns the registered paths by game short name.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware, games []bot.GameOptions) (map[string]string, error) {
	paths := make(map[string]string, len(games))
	owner := make(map[string]string, len(games))

	for _, g := range games {
		if g.ScoresURL == "" {
			continue
		}
		pattern, path, err := middleware.Route(g.ScoresURL)
		if err != nil {
			return nil, fmt.Errorf("game %q: %w", g.ShortName, err)
		}
		if other, dup := owner[path]; dup {
			return nil, &bot.ConfigurationError{
				Message: fmt.Sprintf("games %q and %q share the scores path %q", other, g.ShortName, path),
				Hint:    "Use the {game} placeholder in scores_url",
			}
		}
		owner[path] = g.ShortName
		paths[g.ShortName] = path

		r.GET(pattern, mw.ExactPath(path), mw.RateLimit(), h.GetScores(g.ShortName))
		r.POST(pattern, mw.ExactPath(path), mw.RateLimit(), h.SetScore(g.ShortName))
	}

	return paths, nil
}
