package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "telegram-bot-framework/docs" // Swagger docs
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bot",
	Short: "Telegram bot update dispatcher",
	Long: `Runs the sample Telegram bot. Updates are received by long polling
or through a webhook and dispatched to the registered handlers. HTML5 game
score endpoints and health routes are served in both modes.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: search ./config, ., /etc/telegram-bot/)")
	rootCmd.AddCommand(pollCmd, webhookCmd)
}

// @title       Telegram Bot Framework API
// @description Webhook and HTML5 game score endpoints of a Telegram bot.
// @version     1
// @host        localhost:8080
// @schemes     https http
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
