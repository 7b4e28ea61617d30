package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/middleware"
	"telegram-bot-framework/internal/updates"
	"telegram-bot-framework/pkg/keychain"
	"telegram-bot-framework/pkg/log"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bot
	Bot      BotConfig
	Polling  PollingConfig
	Games    GamesConfig
	Security SecurityConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type BotConfig struct {
	APIToken        string
	WebhookURL      string
	CertificatePath string
	SecretToken     string
	Games           []GameConfig
}

type GameConfig struct {
	ShortName string
	URL       string
	ScoresURL string
}

type PollingConfig struct {
	Timeout        time.Duration
	Interval       time.Duration
	Limit          int
	AllowedUpdates []string
	// OffsetDBPath enables sqlite cursor persistence when set.
	OffsetDBPath string
}

type GamesConfig struct {
	// Secret keys the player token codec. Empty means a random secret per
	// process, which invalidates tokens on restart.
	Secret string
}

type SecurityConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper. With an empty path config.yaml is
// searched in ./config, . and /etc/telegram-bot/.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/telegram-bot/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Bot
	cfg.Bot.APIToken = v.GetString("bot.api_token")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Bot.APIToken = tgToken
	}
	cfg.Bot.WebhookURL = v.GetString("bot.webhook_url")
	cfg.Bot.CertificatePath = v.GetString("bot.certificate_path")
	cfg.Bot.SecretToken = v.GetString("bot.secret_token")

	if v.IsSet("bot.games") {
		gamesRaw := v.Get("bot.games")
		if gamesList, ok := gamesRaw.([]any); ok {
			for _, g := range gamesList {
				if gameMap, ok := g.(map[string]any); ok {
					cfg.Bot.Games = append(cfg.Bot.Games, GameConfig{
						ShortName: getStringFromMap(gameMap, "short_name"),
						URL:       expandEnvVar(v, getStringFromMap(gameMap, "url")),
						ScoresURL: expandEnvVar(v, getStringFromMap(gameMap, "scores_url")),
					})
				}
			}
		}
	}

	// Polling
	cfg.Polling.Timeout = v.GetDuration("polling.timeout")
	cfg.Polling.Interval = v.GetDuration("polling.interval")
	cfg.Polling.Limit = v.GetInt("polling.limit")
	cfg.Polling.OffsetDBPath = v.GetString("polling.offset_db_path")

	// Split allowed updates since viper might not parse array seamlessly from env
	var allowed []string
	for _, kind := range strings.Split(v.GetString("polling.allowed_updates"), ",") {
		if kind = strings.TrimSpace(kind); kind != "" {
			allowed = append(allowed, kind)
		}
	}
	if len(allowed) == 0 {
		allowed = v.GetStringSlice("polling.allowed_updates")
	}
	cfg.Polling.AllowedUpdates = allowed

	// Games & Security
	cfg.Games.Secret = v.GetString("games.secret")
	cfg.Security.RateLimitPerMin = v.GetInt("security.rate_limit_per_min")

	if err := cfg.resolveSecrets(v); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("bot.api_token", "")
	v.SetDefault("bot.webhook_url", "")
	v.SetDefault("bot.certificate_path", "")
	v.SetDefault("bot.secret_token", "")

	v.SetDefault("polling.timeout", updates.DefaultPollTimeout)
	v.SetDefault("polling.interval", updates.DefaultPollInterval)
	v.SetDefault("polling.limit", 0)
	v.SetDefault("polling.allowed_updates", "")
	v.SetDefault("polling.offset_db_path", "")

	v.SetDefault("games.secret", "")
	v.SetDefault("security.rate_limit_per_min", 60)
}

// resolveSecrets expands ${VAR} references and reads keyring:<account>
// references from the system keychain.
func (cfg *Config) resolveSecrets(v *viper.Viper) error {
	secrets := []struct {
		key string
		dst *string
	}{
		{key: "bot.api_token", dst: &cfg.Bot.APIToken},
		{key: "bot.secret_token", dst: &cfg.Bot.SecretToken},
		{key: "games.secret", dst: &cfg.Games.Secret},
	}

	for _, s := range secrets {
		value, err := keychain.Resolve(expandEnvVar(v, *s.dst))
		if err != nil {
			return fmt.Errorf("%s: keychain lookup failed: %w", s.key, err)
		}
		*s.dst = value
	}
	return nil
}

// BotOptions converts the bot section into bot.Options.
func (cfg *Config) BotOptions() bot.Options {
	opts := bot.Options{
		APIToken:        cfg.Bot.APIToken,
		WebhookURL:      cfg.Bot.WebhookURL,
		CertificatePath: cfg.Bot.CertificatePath,
		SecretToken:     cfg.Bot.SecretToken,
	}
	for _, g := range cfg.Bot.Games {
		opts.Games = append(opts.Games, bot.GameOptions{
			ShortName: g.ShortName,
			URL:       g.URL,
			ScoresURL: g.ScoresURL,
		})
	}
	return opts
}

// PollOptions converts the polling section into updates.PollOptions.
func (cfg *Config) PollOptions() updates.PollOptions {
	return updates.PollOptions{
		Timeout:        cfg.Polling.Timeout,
		Interval:       cfg.Polling.Interval,
		Limit:          cfg.Polling.Limit,
		AllowedUpdates: cfg.Polling.AllowedUpdates,
	}
}

func (cfg *Config) ZapConfig() log.ZapConfig {
	return log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}
}

func (cfg *Config) MiddlewareConfig() middleware.Config {
	return middleware.Config{
		RateLimitPerMin: cfg.Security.RateLimitPerMin,
		SecretToken:     cfg.Bot.SecretToken,
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

func getStringFromMap(m map[string]any, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
