package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"telegram-bot-framework/config"
	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/game"
	gameUC "telegram-bot-framework/internal/game/usecase"
	"telegram-bot-framework/internal/httpserver"
	"telegram-bot-framework/internal/sample"
	"telegram-bot-framework/internal/updates"
	"telegram-bot-framework/internal/updates/repository"
	"telegram-bot-framework/internal/updates/repository/memory"
	"telegram-bot-framework/internal/updates/repository/sqlite"
	updatesUC "telegram-bot-framework/internal/updates/usecase"
	"telegram-bot-framework/pkg/encrypter"
	"telegram-bot-framework/pkg/log"
	"telegram-bot-framework/pkg/telegram"
)

const generatedSecretSize = 32

// app is everything both delivery modes share.
type app struct {
	cfg     *config.Config
	l       log.Logger
	bot     *sample.EchoBot
	updates updates.UseCase
	games   game.UseCase
	close   func() error
}

// bootstrap builds and initializes the bot. Init calls getMe, so the bot
// username is known when this returns.
func bootstrap(ctx context.Context) (*app, error) {
	// 1. Configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(cfg.ZapConfig())
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Bot
	opts := cfg.BotOptions()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	b := sample.NewEchoBot(logger, opts, telegram.NewBot(opts.APIToken))

	// 4. Handlers
	secret, err := gamesSecret(ctx, logger, cfg.Games.Secret)
	if err != nil {
		return nil, err
	}
	codec, err := game.NewCodec(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create player token codec: %w", err)
	}
	registry, err := sample.NewRegistry(logger, codec, opts.Games)
	if err != nil {
		return nil, err
	}

	// 5. Offset repository
	repo, closeRepo, err := offsetRepository(logger, cfg.Polling.OffsetDBPath, opts.APIToken)
	if err != nil {
		return nil, err
	}

	// 6. UseCases
	upd := updatesUC.New(logger, b, registry, repo, cfg.PollOptions())
	if err := upd.Init(ctx); err != nil {
		_ = closeRepo()
		return nil, err
	}
	logger.Infof(ctx, "Bot @%s initialized with %d handlers", b.User().Username, registry.Len())

	return &app{
		cfg:     cfg,
		l:       logger,
		bot:     b,
		updates: upd,
		games:   gameUC.New(logger, b, registry, codec),
		close:   closeRepo,
	}, nil
}

// server builds the HTTP server. withWebhook mounts the webhook route.
func (a *app) server(withWebhook bool) (*httpserver.HTTPServer, error) {
	cfg := httpserver.Config{
		Logger:      a.l,
		Port:        a.cfg.HTTPServer.Port,
		Mode:        a.cfg.HTTPServer.Mode,
		Environment: a.cfg.Environment.Name,
		Security:    a.cfg.MiddlewareConfig(),
		GameUC:      a.games,
		Games:       a.resolvedGames(),
	}
	if withWebhook {
		cfg.UpdatesUC = a.updates
	}
	return httpserver.New(a.l, cfg)
}

// resolvedGames returns the games whose options are complete, with their
// URL templates filled in.
func (a *app) resolvedGames() []bot.GameOptions {
	var games []bot.GameOptions
	for _, g := range a.bot.Options().Games {
		if _, err := bot.FindGame(a.bot.Options().Games, g.ShortName); err != nil {
			a.l.Warnf(context.Background(), "Game %q has no scores endpoint: %v", g.ShortName, err)
			continue
		}
		games = append(games, g.Resolve(a.bot.User().Username, a.bot.Options().APIToken))
	}
	return games
}

func gamesSecret(ctx context.Context, l log.Logger, configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	l.Warn(ctx, "games.secret is not set, using a random secret: player tokens will not survive a restart")
	return encrypter.GenerateSecret(generatedSecretSize)
}

func offsetRepository(l log.Logger, path, token string) (repository.OffsetRepository, func() error, error) {
	if path == "" {
		return memory.New(), func() error { return nil }, nil
	}

	botID, _, _ := strings.Cut(token, ":")
	repo, closeFn, err := sqlite.Open(path, botID, l)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open offset database: %w", err)
	}
	return repo, closeFn, nil
}

// runServer serves HTTP next to fn and returns the first failure. Both
// stop when ctx is cancelled.
func runServer(ctx context.Context, srv *httpserver.HTTPServer, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- srv.Run(ctx) }()
	go func() { errCh <- fn(ctx) }()

	var errs []error
	for range 2 {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
		cancel()
	}
	return errors.Join(errs...)
}
