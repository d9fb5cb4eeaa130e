package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	OIDC      OIDCConfig      `mapstructure:"oidc"`
	Uploads   UploadConfig    `mapstructure:"uploads"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig contains connection options for PostgreSQL.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig contains Redis connection settings.
type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// MinIOConfig contains connection options for MinIO/S3-compatible storage.
type MinIOConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	PublicEndpoint   string `mapstructure:"public_endpoint"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	UseSSL           bool   `mapstructure:"use_ssl"`
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AutoCreateBucket bool   `mapstructure:"auto_create_bucket"`
}

// OIDCConfig points at the external identity provider that issues ID tokens.
type OIDCConfig struct {
	Issuer   string `mapstructure:"issuer"`
	ClientID string `mapstructure:"client_id"`
}

// UploadConfig bounds asset uploads and wires the optional clamd scanner.
type UploadConfig struct {
	MaxBytes  int64  `mapstructure:"max_bytes"`
	ClamdAddr string `mapstructure:"clamd_addr"`
}

// RateLimitConfig bounds write traffic per identity.
type RateLimitConfig struct {
	WritesPerWindow int           `mapstructure:"writes_per_window"`
	Window          time.Duration `mapstructure:"window"`
}

// DSN builds a lib/pq compatible connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// Addr returns the host:port pair for the Redis client.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "jobhub")
	v.SetDefault("database.user", "jobhub")
	v.SetDefault("database.password", "jobhub")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.public_endpoint", "http://localhost:9000")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "jobhub-assets")
	v.SetDefault("minio.auto_create_bucket", true)
	v.SetDefault("uploads.max_bytes", int64(5*1024*1024))
	v.SetDefault("rate_limit.writes_per_window", 60)
	v.SetDefault("rate_limit.window", time.Minute)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                     "API_PORT",
		"database.host":                "DATABASE_HOST",
		"database.port":                "DATABASE_PORT",
		"database.name":                "POSTGRES_DB",
		"database.user":                "POSTGRES_USER",
		"database.password":            "POSTGRES_PASSWORD",
		"database.sslmode":             "DATABASE_SSLMODE",
		"redis.host":                   "REDIS_HOST",
		"redis.port":                   "REDIS_PORT",
		"minio.endpoint":               "MINIO_ENDPOINT",
		"minio.public_endpoint":        "MINIO_PUBLIC_ENDPOINT",
		"minio.access_key_id":          "MINIO_ACCESS_KEY_ID",
		"minio.secret_access_key":      "MINIO_SECRET_ACCESS_KEY",
		"minio.use_ssl":                "MINIO_USE_SSL",
		"minio.bucket":                 "MINIO_BUCKET",
		"minio.region":                 "MINIO_REGION",
		"minio.auto_create_bucket":     "MINIO_AUTO_CREATE_BUCKET",
		"oidc.issuer":                  "OIDC_ISSUER",
		"oidc.client_id":               "OIDC_CLIENT_ID",
		"uploads.max_bytes":            "UPLOAD_MAX_BYTES",
		"uploads.clamd_addr":           "CLAMD_ADDR",
		"rate_limit.writes_per_window": "RATE_LIMIT_WRITES_PER_WINDOW",
		"rate_limit.window":            "RATE_LIMIT_WINDOW",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.Database.Host == "" {
		return errors.New("database host is required")
	}
	if cfg.Database.Port <= 0 {
		return errors.New("database port must be positive")
	}
	if cfg.Database.Name == "" {
		return errors.New("database name is required")
	}
	if cfg.Database.User == "" {
		return errors.New("database user is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("database password is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("database sslmode is required")
	}
	if cfg.Redis.Host == "" {
		return errors.New("redis host is required")
	}
	if cfg.Redis.Port <= 0 {
		return errors.New("redis port must be positive")
	}
	if cfg.MinIO.Endpoint == "" {
		return errors.New("minio endpoint is required")
	}
	if cfg.MinIO.Bucket == "" {
		return errors.New("minio bucket is required")
	}
	if cfg.OIDC.Issuer == "" {
		return errors.New("oidc issuer is required")
	}
	if cfg.OIDC.ClientID == "" {
		return errors.New("oidc client id is required")
	}
	if cfg.Uploads.MaxBytes <= 0 {
		return errors.New("upload max bytes must be positive")
	}
	if cfg.RateLimit.WritesPerWindow <= 0 {
		return errors.New("rate limit writes per window must be positive")
	}
	if cfg.RateLimit.Window <= 0 {
		return errors.New("rate limit window must be positive")
	}
	return nil
}
