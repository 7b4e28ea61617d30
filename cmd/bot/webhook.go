package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/model"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Receive updates through a webhook",
	Long: `Registers bot.webhook_url with Telegram and serves it. The URL must be
HTTPS and may contain the {bot} and {token} placeholders.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if a.updates.WebhookURL() == "" {
			return &bot.ConfigurationError{Message: "webhook url is required in webhook mode", Hint: "Set bot.webhook_url"}
		}

		// 1. HTTP Server, routes first so Telegram finds the endpoint
		srv, err := a.server(true)
		if err != nil {
			return err
		}

		// 2. Delivery mode
		if err := a.updates.SetMode(ctx, model.ModeWebhook); err != nil {
			return err
		}

		// 3. Run
		if err := srv.Run(ctx); err != nil {
			a.l.Errorf(ctx, "Server stopped with error: %v", err)
			return err
		}

		a.l.Info(ctx, "Server stopped gracefully")
		return nil
	},
}
