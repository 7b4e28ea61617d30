package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"telegram-bot-framework/internal/model"
)

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Receive updates by long polling",
	Long:  `Deletes any registered webhook and long-polls getUpdates until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		// 1. Delivery mode
		if err := a.updates.SetMode(ctx, model.ModePolling); err != nil {
			return err
		}

		// 2. HTTP Server for game scores and health
		srv, err := a.server(false)
		if err != nil {
			return err
		}

		// 3. Run
		if err := runServer(ctx, srv, a.updates.Run); err != nil {
			a.l.Errorf(ctx, "Bot stopped with error: %v", err)
			return err
		}

		a.l.Infof(ctx, "Bot stopped gracefully at offset %d", a.updates.Offset())
		return nil
	},
}
