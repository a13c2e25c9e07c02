package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe fallback
// - default: Values common across all environments (timezone, origins, delays, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Referral ReferralConfig
	NATS     NATSConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"4000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type ReferralConfig struct {
	// SeedFile overrides the embedded demo dataset when set.
	SeedFile  string        `envconfig:"SEED_FILE"`
	SendDelay time.Duration `envconfig:"REFERRAL_SEND_DELAY" default:"0s"`
}

// NATSConfig enables referral-sent events over NATS. An empty URL keeps events in the log.
type NATSConfig struct {
	URL     string        `envconfig:"NATS_URL"`
	Subject string        `envconfig:"NATS_SUBJECT" default:"referrals.sent"`
	Name    string        `envconfig:"NATS_CLIENT_NAME" default:"referral-credits"`
	Timeout time.Duration `envconfig:"NATS_CONNECT_TIMEOUT" default:"2s"`
}

func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		NATS: NATSConfig{
			Subject: "referrals.sent",
			Name:    "referral-credits-test",
			Timeout: time.Second,
		},
	}
}
