package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all the configuration for the application
type Config struct {
	BotToken      string
	BotDebug      bool
	DatabaseURL   string
	SessionTTL    time.Duration
	PurgeInterval time.Duration
	ContentFile   string
	QuizFile      string
	ChartWidth    int
	ChartHeight   int
	LogLevel      string
}

// Defaults
const (
	DefaultDatabaseURL   = "file::memory:?cache=shared"
	DefaultSessionTTL    = 2 * time.Hour
	DefaultPurgeInterval = 10 * time.Minute
	DefaultChartWidth    = 1000
	DefaultChartHeight   = 600
	DefaultLogLevel      = "info"
)

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		DatabaseURL:   DefaultDatabaseURL,
		SessionTTL:    DefaultSessionTTL,
		PurgeInterval: DefaultPurgeInterval,
		ChartWidth:    DefaultChartWidth,
		ChartHeight:   DefaultChartHeight,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	// A missing .env is fine, variables may come from the real environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	c.BotDebug = os.Getenv("DEBUG") == "true"

	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("CONTENT_FILE"); v != "" {
		c.ContentFile = v
	}
	if v := os.Getenv("QUIZ_FILE"); v != "" {
		c.QuizFile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}

	var err error
	if c.SessionTTL, err = durationEnv("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}
	if c.PurgeInterval, err = durationEnv("PURGE_INTERVAL", c.PurgeInterval); err != nil {
		return err
	}
	if c.ChartWidth, err = intEnv("CHART_WIDTH", c.ChartWidth); err != nil {
		return err
	}
	if c.ChartHeight, err = intEnv("CHART_HEIGHT", c.ChartHeight); err != nil {
		return err
	}
	return nil
}

// Validate checks value ranges. The bot token is checked by RequireBotToken
// because only the bot command needs it.
func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.PurgeInterval <= 0 {
		return fmt.Errorf("PURGE_INTERVAL must be positive, got %s", c.PurgeInterval)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.ChartWidth, c.ChartHeight)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	return nil
}

// RequireBotToken fails when no Telegram token is configured
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	return nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
