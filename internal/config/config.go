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

const (
	defaultHTTPPort        = "8080"
	defaultGatewayTimeout  = 15 * time.Second
	defaultPageSize        = 10
	defaultRevenueCacheTTL = 5 * time.Minute
	defaultNotifyTopic     = "admin-notifications"
	defaultOrdersTopic     = "orders"
	defaultGroupID         = "charms-admin"
)

var ErrMissingGatewayURL = errors.New("config: GATEWAY_BASE_URL is required")

type Config struct {
	HTTP_PORT string

	GATEWAY_BASE_URL string
	GATEWAY_TOKEN    string
	GATEWAY_TIMEOUT  time.Duration

	PAGE_SIZE int

	// Optional notification journal in Postgres.
	DB_STRING string

	// Optional Kafka wiring; empty KAFKA_BROKERS disables both directions.
	KAFKA_BROKERS      string
	KAFKA_NOTIFY_TOPIC string
	KAFKA_ORDERS_TOPIC string
	KAFKA_GROUP_ID     string

	// Optional revenue cache; empty REDIS_ADDR disables it.
	REDIS_ADDR        string
	REDIS_PASSWORD    string
	REDIS_DB          int
	REVENUE_CACHE_TTL time.Duration

	LOG_LEVEL  string
	LOG_FORMAT string
}

// LoadConfig reads the environment, after merging a .env file from the
// working directory when one exists. Real environment variables win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		HTTP_PORT:          stringOr(getenv("HTTP_PORT"), defaultHTTPPort),
		GATEWAY_BASE_URL:   strings.TrimRight(strings.TrimSpace(getenv("GATEWAY_BASE_URL")), "/"),
		GATEWAY_TOKEN:      strings.TrimSpace(getenv("GATEWAY_TOKEN")),
		DB_STRING:          strings.TrimSpace(getenv("DB_STRING")),
		KAFKA_BROKERS:      strings.TrimSpace(getenv("KAFKA_BROKERS")),
		KAFKA_NOTIFY_TOPIC: stringOr(getenv("KAFKA_NOTIFY_TOPIC"), defaultNotifyTopic),
		KAFKA_ORDERS_TOPIC: stringOr(getenv("KAFKA_ORDERS_TOPIC"), defaultOrdersTopic),
		KAFKA_GROUP_ID:     stringOr(getenv("KAFKA_GROUP_ID"), defaultGroupID),
		REDIS_ADDR:         strings.TrimSpace(getenv("REDIS_ADDR")),
		REDIS_PASSWORD:     getenv("REDIS_PASSWORD"),
		LOG_LEVEL:          stringOr(getenv("LOG_LEVEL"), "info"),
		LOG_FORMAT:         stringOr(getenv("LOG_FORMAT"), "json"),
	}

	if cfg.GATEWAY_BASE_URL == "" {
		return nil, ErrMissingGatewayURL
	}

	var err error
	if cfg.GATEWAY_TIMEOUT, err = durationOr(getenv("GATEWAY_TIMEOUT"), defaultGatewayTimeout); err != nil {
		return nil, fmt.Errorf("config: GATEWAY_TIMEOUT: %w", err)
	}
	if cfg.REVENUE_CACHE_TTL, err = durationOr(getenv("REVENUE_CACHE_TTL"), defaultRevenueCacheTTL); err != nil {
		return nil, fmt.Errorf("config: REVENUE_CACHE_TTL: %w", err)
	}
	if cfg.PAGE_SIZE, err = positiveIntOr(getenv("PAGE_SIZE"), defaultPageSize); err != nil {
		return nil, fmt.Errorf("config: PAGE_SIZE: %w", err)
	}
	if cfg.REDIS_DB, err = intOr(getenv("REDIS_DB"), 0); err != nil {
		return nil, fmt.Errorf("config: REDIS_DB: %w", err)
	}

	return cfg, nil
}

func stringOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

func durationOr(v string, fallback time.Duration) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", v)
	}
	return d, nil
}

func intOr(v string, fallback int) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func positiveIntOr(v string, fallback int) (int, error) {
	n, err := intOr(v, fallback)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}
