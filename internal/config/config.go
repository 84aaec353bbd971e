package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the application configuration. Values come from the yaml file,
// are overridden by environment variables and fall back to env-default.
type Config struct {
	// Environment selects the logger flavour (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		// Addr is the listen address of the API server.
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"    yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"   yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"2m"    yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"    yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes caps the size of a signup request body.
		MaxBodyBytes int64  `env:"HTTP_MAX_BODY_BYTES" env-default:"65536" yaml:"maxBodyBytes"`
		MetricsPath  string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"signup"    yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"signup"    yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost" yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"      yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"   yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"signup"    yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"        yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"2"         yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"        yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"        yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	Account struct {
		// BcryptCost is the work factor used to hash passwords.
		BcryptCost int `env:"ACCOUNT_BCRYPT_COST" env-default:"10" yaml:"bcryptCost"`
	} `yaml:"account"`

	Worker struct {
		// MaxWorkers is the concurrency of the default river queue.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// MaxAttempts bounds retries of background jobs.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads configPath into a Config. Variables from a .env file in the
// working directory are exported first, and a missing config file means
// environment variables and defaults only.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
