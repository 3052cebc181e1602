package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between deployments (remote endpoints, secrets)
// - default: Values common across all environments (timeouts, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Feed    FeedConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
}

// ServerConfig configures the local facade UI collaborators talk to.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8787"`
}

// GatewayConfig configures the remote swap service client.
type GatewayConfig struct {
	BaseURL string        `envconfig:"GATEWAY_BASE_URL" required:"true"`
	Token   string        `envconfig:"GATEWAY_TOKEN" required:"true"`
	Timeout time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

// FeedConfig configures the push-channel consumer.
type FeedConfig struct {
	URL               string        `envconfig:"FEED_URL" required:"true"`
	ReconnectDelay    time.Duration `envconfig:"FEED_RECONNECT_DELAY" default:"1s"`
	MaxReconnectDelay time.Duration `envconfig:"FEED_MAX_RECONNECT_DELAY" default:"30s"`
	PingInterval      time.Duration `envconfig:"FEED_PING_INTERVAL" default:"30s"`
	ReadTimeout       time.Duration `envconfig:"FEED_READ_TIMEOUT" default:"60s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
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
			Port: "8889", // Test port
		},
		Gateway: GatewayConfig{
			BaseURL: "http://localhost:18080",
			Token:   "test-token",
			Timeout: 2 * time.Second,
		},
		Feed: FeedConfig{
			URL:               "ws://localhost:18080/events",
			ReconnectDelay:    10 * time.Millisecond,
			MaxReconnectDelay: 100 * time.Millisecond,
			PingInterval:      time.Second,
			ReadTimeout:       2 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
	}
}
