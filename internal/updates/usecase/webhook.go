package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/pkg/telegram"
)

func (uc *implUseCase) enableWebhook(ctx context.Context) error {
	opts := uc.bot.Options()

	if uc.webhookURL == "" {
		return &bot.ConfigurationError{Message: "webhook url is not configured", Hint: "Set bot.webhook_url"}
	}
	if !strings.HasPrefix(strings.ToLower(uc.webhookURL), "https://") {
		return &bot.ConfigurationError{Message: fmt.Sprintf("webhook url %q is not a HTTPS url", uc.webhookURL)}
	}

	req := telegram.SetWebhookRequest{URL: uc.webhookURL, SecretToken: opts.SecretToken}
	if strings.TrimSpace(opts.CertificatePath) != "" {
		cert, err := os.ReadFile(opts.CertificatePath)
		if err != nil {
			return &bot.ConfigurationError{
				Message: fmt.Sprintf("certificate file %q cannot be read", opts.CertificatePath),
				Err:     err,
			}
		}
		req.Certificate = cert
	}

	if err := uc.bot.Client().SetWebhook(ctx, req); err != nil {
		uc.l.Errorf(ctx, "updates.usecase.SetMode SetWebhook: %v", err)
		return fmt.Errorf("setWebhook: %w", err)
	}

	uc.l.Infof(ctx, "updates.usecase.SetMode: webhook registered (certificate=%t)", req.Certificate != nil)
	return nil
}
