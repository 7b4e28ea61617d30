package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/game"
	"telegram-bot-framework/internal/middleware"
	"telegram-bot-framework/internal/updates"
	"telegram-bot-framework/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Updates domain, nil unless serving a webhook
	updatesUC updates.UseCase

	// Game domain
	gameUC game.UseCase
	games  []bot.GameOptions
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Security    middleware.Config

	// UpdatesUC receives webhook calls at the path of its WebhookURL.
	// Leave nil in polling mode.
	UpdatesUC updates.UseCase

	// GameUC serves the scores URL of every game in Games. Games must be
	// resolved already.
	GameUC game.UseCase
	Games  []bot.GameOptions
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		updatesUC:   cfg.UpdatesUC,
		gameUC:      cfg.GameUC,
		games:       cfg.Games,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.Security)
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if len(srv.games) > 0 && srv.gameUC == nil {
		return errors.New("game usecase is required when games are configured")
	}
	return nil
}
