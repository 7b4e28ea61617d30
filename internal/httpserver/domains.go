package httpserver

import (
	"context"
	"errors"

	gameHTTP "telegram-bot-framework/internal/game/delivery/http"
	updatesHTTP "telegram-bot-framework/internal/updates/delivery/http"
	"telegram-bot-framework/pkg/telegram"
)

// setupUpdatesDomain mounts the webhook endpoint at the path of the resolved
// webhook URL.
func (srv *HTTPServer) setupUpdatesDomain(ctx context.Context) error {
	webhookURL := srv.updatesUC.WebhookURL()
	if webhookURL == "" {
		return errors.New("webhook url is not resolved, initialize the updates usecase first")
	}

	h := updatesHTTP.New(srv.l, srv.updatesUC)

	path, err := updatesHTTP.RegisterRoutes(srv.gin, h, srv.mw, webhookURL)
	if err != nil {
		return err
	}

	srv.l.Infof(ctx, "httpserver: webhook route registered at POST %s", telegram.RedactToken(path))
	return nil
}

// setupGameDomain mounts GET and POST at every game's scores path.
func (srv *HTTPServer) setupGameDomain(ctx context.Context) error {
	h := gameHTTP.New(srv.l, srv.gameUC)

	paths, err := gameHTTP.RegisterRoutes(srv.gin, h, srv.mw, srv.games)
	if err != nil {
		return err
	}

	for name, path := range paths {
		srv.l.Infof(ctx, "httpserver: scores route for game %q registered at %s", name, telegram.RedactToken(path))
	}
	return nil
}
