// Package config holds the service configuration, read from command-line
// flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	CatalogSourceJSON     = "json"
	CatalogSourcePostgres = "postgres"

	SeatStoreMemory   = "memory"
	SeatStoreRedis    = "redis"
	SeatStorePostgres = "postgres"
)

type Config struct {
	Port             int    `validate:"gte=1,lte=65535"`
	Env              string `validate:"oneof=dev staging prod test"`
	Catalog          CatalogConfig
	SeatStore        string        `validate:"oneof=memory redis postgres"`
	ReserveTimeout   time.Duration `validate:"gt=0"`
	CustomersDir     string
	DB               DBConfig
	Redis            RedisConfig
	OtelCollectorUrl string
	DisplayVersion   bool
}

type CatalogConfig struct {
	Source string `validate:"oneof=json postgres"`
	File   string `validate:"required_if=Source json"`
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int `validate:"gte=1"`
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int `validate:"gte=1"`
	MaxIdleConns int `validate:"gte=0"`
	MaxIdleTime  time.Duration
}

// NeedsDB reports whether any configured component reads from PostgreSQL.
func (c Config) NeedsDB() bool {
	return c.Catalog.Source == CatalogSourcePostgres || c.SeatStore == SeatStorePostgres
}

func (c Config) NeedsRedis() bool {
	return c.SeatStore == SeatStoreRedis
}

// Parse reads the configuration from args (without the program name).
func Parse(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("cinema-booking", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", 3000, "server port")
	fs.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	fs.StringVar(&cfg.Catalog.Source, "catalog-source", CatalogSourceJSON, "Catalog source (json|postgres)")
	fs.StringVar(&cfg.Catalog.File, "catalog-file", "data/catalog.json", "Catalog document used by the json source")

	fs.StringVar(&cfg.SeatStore, "seat-store", SeatStoreMemory, "Seat store (memory|redis|postgres)")
	fs.DurationVar(&cfg.ReserveTimeout, "reserve-timeout", 250*time.Millisecond, "Max wait for a busy showtime before failing")

	fs.StringVar(&cfg.CustomersDir, "customers-dir", "", "Directory for customer documents (empty keeps them in memory)")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	fs.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	fs.BoolVar(&cfg.DisplayVersion, "version", false, "Display version and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DisplayVersion {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.NeedsDB() && c.DB.DSN == "" {
		return errors.New("invalid configuration: -db-dsn is required for the postgres catalog or seat store")
	}

	if c.NeedsRedis() && c.Redis.URL == "" {
		return errors.New("invalid configuration: -redis-url is required for the redis seat store")
	}

	return nil
}
