package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Sheets    SheetsConfig    `mapstructure:"sheets"`
	Projects  SheetRef        `mapstructure:"projects"`
	Calls     SheetRef        `mapstructure:"calls"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Mode         string `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type WebhookConfig struct {
	MaxPayloadBytes int64             `mapstructure:"max_payload_bytes"`
	MaxAttempts     int               `mapstructure:"max_attempts"`
	BaseDelay       time.Duration     `mapstructure:"base_delay"`
	Timeout         time.Duration     `mapstructure:"timeout"`
	HistorySize     int               `mapstructure:"history_size"`
	UserAgentPrefix string            `mapstructure:"user_agent_prefix"`
	SigningSecret   string            `mapstructure:"signing_secret"` // empty = unsigned deliveries
	Endpoints       map[string]string `mapstructure:"endpoints"`
}

// RateLimitConfig bounds dispatches per user per webhook kind.
type RateLimitConfig struct {
	Limit  int64         `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

type SheetsConfig struct {
	CredentialsFile string        `mapstructure:"credentials_file"` // service-account JSON; empty = in-memory source
	BaseURL         string        `mapstructure:"base_url"`
	TokenURL        string        `mapstructure:"token_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// SheetRef points at one spreadsheet (URL or bare id) and an optional worksheet.
type SheetRef struct {
	SheetID   string `mapstructure:"sheet_id"`
	Worksheet string `mapstructure:"worksheet"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

const defaultWebhookHost = "https://agentonline-u29564.vm.elestio.app/webhook-test/"

// DefaultEndpoints maps each webhook kind to its stock endpoint path.
var DefaultEndpoints = map[string]string{
	"audio":     defaultWebhookHost + "audio-files",
	"books":     defaultWebhookHost + "books-content",
	"lectures":  defaultWebhookHost + "lectures-education",
	"podcasts":  defaultWebhookHost + "podcasts-episodes",
	"notes":     defaultWebhookHost + "notes-thoughts",
	"documents": defaultWebhookHost + "documents-files",
	"videos":    defaultWebhookHost + "videos-content",
	"images":    defaultWebhookHost + "images-photos",
	"research":  defaultWebhookHost + "research-data",
	"meetings":  defaultWebhookHost + "meetings-records",
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BDC_.
// Nested keys use underscore: BDC_CACHE_TTL, BDC_WEBHOOK_MAX_ATTEMPTS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 12<<20)
	v.SetDefault("cache.ttl", "300s")
	v.SetDefault("webhook.max_payload_bytes", 10<<20)
	v.SetDefault("webhook.max_attempts", 3)
	v.SetDefault("webhook.base_delay", "1s")
	v.SetDefault("webhook.timeout", "30s")
	v.SetDefault("webhook.history_size", 20)
	v.SetDefault("webhook.user_agent_prefix", "Book-Buddy-Multi-Webhook/2.0.0")
	v.SetDefault("webhook.signing_secret", "")
	for kind, url := range DefaultEndpoints {
		v.SetDefault("webhook.endpoints."+kind, url)
	}
	v.SetDefault("ratelimit.limit", 10)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("sheets.credentials_file", "")
	v.SetDefault("sheets.base_url", "https://sheets.googleapis.com/v4")
	v.SetDefault("sheets.token_url", "https://oauth2.googleapis.com/token")
	v.SetDefault("sheets.timeout", "30s")
	v.SetDefault("projects.sheet_id", "")
	v.SetDefault("projects.worksheet", "")
	v.SetDefault("calls.sheet_id", "")
	v.SetDefault("calls.worksheet", "")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "bizdash")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BDC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars and defaults can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	if c.Webhook.MaxAttempts < 1 {
		return fmt.Errorf("webhook.max_attempts must be >= 1, got %d", c.Webhook.MaxAttempts)
	}
	if c.Webhook.MaxPayloadBytes <= 0 {
		return fmt.Errorf("webhook.max_payload_bytes must be positive")
	}
	if c.Webhook.HistorySize < 1 {
		return fmt.Errorf("webhook.history_size must be >= 1, got %d", c.Webhook.HistorySize)
	}
	return nil
}
