package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Wizard sessions.
	SessionStore string        `mapstructure:"SESSION_STORE"`
	SessionTTL   time.Duration `mapstructure:"SESSION_TTL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// DynamoDB.
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	BookingsTable      string `mapstructure:"BOOKINGS_TABLE"`

	// Payments.
	MercadoPagoAccessToken string        `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool          `mapstructure:"PAYMENT_GATEWAY_MOCK"`
	HandoffTimeout         time.Duration `mapstructure:"HANDOFF_TIMEOUT"`

	MaxRequestsPerMin int `mapstructure:"RATE_LIMIT_PER_MIN"`
}

var defaults = map[string]any{
	"APP_PORT":                 "8080",
	"ENV":                      "development",
	"LOG_LEVEL":                "info",
	"SESSION_STORE":            SessionStoreMemory,
	"SESSION_TTL":              "30m",
	"REDIS_ADDR":               "localhost:6379",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"AWS_REGION":               "us-east-1",
	"AWS_ACCESS_KEY_ID":        "local",
	"AWS_SECRET_ACCESS_KEY":    "local",
	"DYNAMODB_ENDPOINT":        "",
	"BOOKINGS_TABLE":           "bookings",
	"MERCADOPAGO_ACCESS_TOKEN": "",
	"PAYMENT_GATEWAY_MOCK":     false,
	"HANDOFF_TIMEOUT":          "15s",
	"RATE_LIMIT_PER_MIN":       100,
}

// Load reads config.yaml (optional, in "." or "./config") and the
// environment. Environment variables win over the file.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.SessionStore = strings.ToLower(strings.TrimSpace(cfg.SessionStore))
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.HandoffTimeout <= 0 {
		return errors.New("HANDOFF_TIMEOUT must be positive")
	}
	if c.MaxRequestsPerMin <= 0 {
		return errors.New("RATE_LIMIT_PER_MIN must be positive")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
