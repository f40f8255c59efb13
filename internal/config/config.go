package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"tellobot/internal/domain"
)

const (
	TransportUDP = "udp"
	TransportLog = "log"
)

type Config struct {
	Token           string
	GuildID         string
	DatabaseURL     string
	MigrationsPath  string
	Transport       string
	TelloAddr       string
	TelloLocalAddr  string
	ResponseTimeout time.Duration
	SendQueue       int
	DefaultLocale   domain.Locale
	LogLevel        string
	LogFormat       string
}

// Load reads the configuration from the environment (and an optional .env) and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: envOr("MIGRATIONS_PATH", "migrations"),
		Transport:      envOr("TRANSPORT", TransportUDP),
		TelloAddr:      envOr("TELLO_ADDR", "192.168.10.1:8889"),
		TelloLocalAddr: envOr("TELLO_LOCAL_ADDR", "0.0.0.0:0"),
		DefaultLocale:  domain.ResolveLocale(os.Getenv("DEFAULT_LOCALE")),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LogFormat:      envOr("LOG_FORMAT", "json"),
	}

	timeout, err := time.ParseDuration(envOr("TELLO_RESPONSE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("config: TELLO_RESPONSE_TIMEOUT is invalid: %w", err)
	}
	cfg.ResponseTimeout = timeout

	queue, err := strconv.Atoi(envOr("SEND_QUEUE", "16"))
	if err != nil {
		return nil, fmt.Errorf("config: SEND_QUEUE must be an integer: %w", err)
	}
	cfg.SendQueue = queue

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// validate checks the settings shared by every entry point.
func (c *Config) validate() error {
	switch c.Transport {
	case TransportUDP, TransportLog:
	default:
		return fmt.Errorf("config: TRANSPORT must be %q or %q, got %q", TransportUDP, TransportLog, c.Transport)
	}

	if _, _, err := net.SplitHostPort(c.TelloAddr); err != nil {
		return fmt.Errorf("config: TELLO_ADDR is invalid (%q): %w", c.TelloAddr, err)
	}
	if _, _, err := net.SplitHostPort(c.TelloLocalAddr); err != nil {
		return fmt.Errorf("config: TELLO_LOCAL_ADDR is invalid (%q): %w", c.TelloLocalAddr, err)
	}

	if c.ResponseTimeout <= 0 {
		return fmt.Errorf("config: TELLO_RESPONSE_TIMEOUT must be positive")
	}
	if c.SendQueue <= 0 {
		return fmt.Errorf("config: SEND_QUEUE must be positive")
	}

	return nil
}

// RequireDiscord applies the rules that only the Discord bot needs.
func (c *Config) RequireDiscord() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/tellobot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL is invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL is invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
