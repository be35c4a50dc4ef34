package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Mail       Mail       `yaml:"mail"`
	Cleanup    Cleanup    `yaml:"cleanup"`
}

type Storage struct {
	Driver          string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`
	MongoURI        string        `yaml:"mongo_uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database        string        `yaml:"database" env:"MONGO_DATABASE" env-default:"bakery"`
	PostgresDSN     string        `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
	Timeout         time.Duration `yaml:"timeout" env:"STORAGE_TIMEOUT" env-default:"5s"`
	ConnectAttempts int           `yaml:"connect_attempts" env:"STORAGE_CONNECT_ATTEMPTS" env-default:"5"`
}

type HTTPServer struct {
	Address       string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Port          string        `yaml:"-" env:"PORT"`
	Timeout       time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout   time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	AllowedOrigin string        `yaml:"allowed_origin" env:"ALLOWED_ORIGIN" env-default:"https://claramazzocchi.github.io"`
	RateLimit     float64       `yaml:"rate_limit" env:"RATE_LIMIT" env-default:"1"`
	RateBurst     int           `yaml:"rate_burst" env:"RATE_BURST" env-default:"5"`
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a reverse proxy that sets those headers.
	TrustProxy bool `yaml:"trust_proxy" env:"TRUST_PROXY" env-default:"false"`
}

type Mail struct {
	Host     string        `yaml:"host" env:"MAIL_HOST" env-default:"smtp.gmail.com"`
	Port     int           `yaml:"port" env:"MAIL_PORT" env-default:"587"`
	User     string        `yaml:"user" env:"MAIL_USER"`
	Password string        `yaml:"password" env:"MAIL_PASSWORD"`
	From     string        `yaml:"from" env:"MAIL_FROM"`
	Timeout  time.Duration `yaml:"timeout" env:"MAIL_TIMEOUT" env-default:"10s"`
}

// Enabled reports whether outbound mail credentials are configured.
func (m Mail) Enabled() bool {
	return m.User != ""
}

type Cleanup struct {
	Interval time.Duration `yaml:"interval" env:"CLEANUP_INTERVAL" env-default:"24h"`
	Timezone string        `yaml:"timezone" env:"CLEANUP_TIMEZONE" env-default:"Local"`
}

func (c Cleanup) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at path when path is set, otherwise the environment only.
// A .env file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: load .env: %w", op, err)
	}

	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: config file %s: %w", op, path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.HTTPServer.Port != "" {
		cfg.HTTPServer.Address = net.JoinHostPort("", cfg.HTTPServer.Port)
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.User
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}

	switch c.Storage.Driver {
	case DriverMongo:
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return errors.New("postgres driver requires postgres_dsn")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Storage.ConnectAttempts < 1 {
		return errors.New("connect_attempts must be at least 1")
	}

	if c.Cleanup.Interval < 0 {
		return errors.New("cleanup interval must not be negative")
	}

	if _, err := c.Cleanup.Location(); err != nil {
		return fmt.Errorf("cleanup timezone: %w", err)
	}

	return nil
}
