package config

import (
	"net/netip"
	"time"
)

type Config struct {
	Server      ServerConfig
	Shopify     ShopifyConfig
	OpenAI      OpenAIConfig
	Mysql       MysqlConfig
	TelegramBot TelegramBotConfig
	Log         LogConfig
}

type ServerConfig struct {
	Port           int
	StaticDir      string
	RateLimitRPS   int
	RateLimitBurst int
	// TrustedProxies may set X-Forwarded-For for rate limiting.
	TrustedProxies []netip.Prefix
}

type ShopifyConfig struct {
	Domain           string
	StorefrontToken  string
	StorefrontAPIVer string
	AdminToken       string
	AdminAPIVer      string
	Timeout          time.Duration
}

// StorefrontReady reports whether the storefront client can be used.
func (c ShopifyConfig) StorefrontReady() bool {
	return c.Domain != "" && c.StorefrontToken != ""
}

// AdminReady reports whether the admin client can be used.
func (c ShopifyConfig) AdminReady() bool {
	return c.Domain != "" && c.AdminToken != ""
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseUrl string
	Timeout time.Duration
}

type MysqlConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// Enabled reports whether enough is set to open a connection.
func (c MysqlConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Database != ""
}

type TelegramBotConfig struct {
	ChatId string
	Token  string
}

type LogConfig struct {
	Level  string
	Format string
}
