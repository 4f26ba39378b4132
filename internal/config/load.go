package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = 3000
	defaultStaticDir     = "public"
	defaultShopifyAPIVer = "2025-01"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAIBaseUrl = "https://api.openai.com/v1"
)

// Load reads .env (when present) and the process environment. Missing
// upstream credentials are not an error here; clients report them on use.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	port, err := intWithDefault("PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	rps, err := intWithDefault("RATE_LIMIT_RPS", 5)
	if err != nil {
		return nil, err
	}
	burst, err := intWithDefault("RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}
	trusted, err := prefixList("TRUSTED_PROXIES")
	if err != nil {
		return nil, err
	}
	shopifyTimeout, err := durationWithDefault("SHOPIFY_TIMEOUT", 8*time.Second)
	if err != nil {
		return nil, err
	}
	openaiTimeout, err := durationWithDefault("OPENAI_TIMEOUT", 20*time.Second)
	if err != nil {
		return nil, err
	}
	mysqlPort, err := intWithDefault("MYSQL_PORT", 3306)
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port:           port,
			StaticDir:      stringWithDefault("STATIC_DIR", defaultStaticDir),
			RateLimitRPS:   rps,
			RateLimitBurst: burst,
			TrustedProxies: trusted,
		},
		Shopify: ShopifyConfig{
			Domain:           optionalString("SHOPIFY_DOMAIN"),
			StorefrontToken:  optionalString("SHOPIFY_STOREFRONT_TOKEN"),
			StorefrontAPIVer: stringWithDefault("SHOPIFY_STOREFRONT_API_VERSION", defaultShopifyAPIVer),
			AdminToken:       optionalString("SHOPIFY_ADMIN_TOKEN"),
			AdminAPIVer:      stringWithDefault("SHOPIFY_ADMIN_API_VERSION", defaultShopifyAPIVer),
			Timeout:          shopifyTimeout,
		},
		OpenAI: OpenAIConfig{
			APIKey:  optionalString("OPENAI_API_KEY"),
			Model:   stringWithDefault("OPENAI_MODEL", defaultOpenAIModel),
			BaseUrl: stringWithDefault("OPENAI_BASE_URL", defaultOpenAIBaseUrl),
			Timeout: openaiTimeout,
		},
		Mysql: MysqlConfig{
			Host:     optionalString("MYSQL_HOST"),
			Port:     mysqlPort,
			Username: optionalString("MYSQL_USER"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Database: optionalString("MYSQL_DATABASE"),
		},
		TelegramBot: TelegramBotConfig{
			ChatId: optionalString("TELEGRAM_CHAT_ID"),
			Token:  optionalString("TELEGRAM_BOT_TOKEN"),
		},
		Log: LogConfig{
			Level:  stringWithDefault("LOG_LEVEL", "info"),
			Format: stringWithDefault("LOG_FORMAT", "json"),
		},
	}, nil
}

// LoadForOrderLookup is Load plus the admin credentials the CLI cannot run without.
func LoadForOrderLookup() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if _, err := requriedString("SHOPIFY_DOMAIN"); err != nil {
		return nil, err
	}
	if _, err := requriedString("SHOPIFY_ADMIN_TOKEN"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadForChatPing is Load plus the chat backend key.
func LoadForChatPing() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if _, err := requriedString("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// MaskSecret keeps the first 7 and last 4 characters of a key. On short
// keys the two ends overlap.
func MaskSecret(k string) string {
	if k == "" {
		return "missing"
	}
	return k[:min(7, len(k))] + "…" + k[max(0, len(k)-4):]
}
