package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

type DatabaseConfig struct {
	User     string `env:"POSTGRES_USER,required,notEmpty"`
	Password string `env:"POSTGRES_PASSWORD,required,notEmpty"`
	Host     string `env:"POSTGRES_HOST" envDefault:"postgres"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	Name     string `env:"POSTGRES_DB" envDefault:"grocery_db"`
}

// DSN builds the pgx connection URL.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type KafkaConfig struct {
	Enabled bool   `env:"KAFKA_ENABLED" envDefault:"true"`
	Broker  string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	Topic   string `env:"KAFKA_TOPIC" envDefault:"orders"`
	GroupID string `env:"KAFKA_GROUP_ID" envDefault:"grocery_orders"`
}

type CacheConfig struct {
	Backend   string `env:"CACHE_BACKEND" envDefault:"redis"`
	Prefix    string `env:"CACHE_PREFIX" envDefault:"grocery"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
}

type HTTPConfig struct {
	Port            string        `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type ServiceConfig struct {
	Kafka    KafkaConfig
	Database DatabaseConfig
	Cache    CacheConfig
	HTTP     HTTPConfig
}

type ProducerConfig struct {
	Kafka       KafkaConfig
	Interval    time.Duration `env:"PRODUCER_INTERVAL" envDefault:"2s"`
	BadDataRate float64       `env:"PRODUCER_BAD_DATA_RATE" envDefault:"0.1"`
	// MaxReferenceID bounds the fake customer, payment and product ids.
	MaxReferenceID int `env:"PRODUCER_MAX_REFERENCE_ID" envDefault:"20"`
}

type SeedConfig struct {
	Database  DatabaseConfig
	Customers int `env:"SEED_CUSTOMERS" envDefault:"20"`
	Payments  int `env:"SEED_PAYMENTS" envDefault:"20"`
	Products  int `env:"SEED_PRODUCTS" envDefault:"20"`
	Producers int `env:"SEED_PRODUCERS" envDefault:"5"`
	Suppliers int `env:"SEED_SUPPLIERS" envDefault:"5"`
}

func LoadServiceConfig() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.Cache.Backend {
	case CacheBackendRedis, CacheBackendMemory:
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	return cfg, nil
}

func LoadProducerConfig() (*ProducerConfig, error) {
	cfg := &ProducerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.BadDataRate < 0 || cfg.BadDataRate > 1 {
		return nil, fmt.Errorf("bad data rate must be within [0, 1], got %v", cfg.BadDataRate)
	}
	if cfg.MaxReferenceID < 1 {
		return nil, fmt.Errorf("max reference id must be positive")
	}
	return cfg, nil
}

func LoadSeedConfig() (*SeedConfig, error) {
	cfg := &SeedConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
