// Package config загружает настройки клиента и сервера.
// Порядок: значения по умолчанию, YAML файл (если задан), переменные окружения.
// Флаги командной строки применяются поверх в main.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Окружения, от которых зависит формат логов
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// EnvConfigPath переменная окружения с путем к YAML файлу
const EnvConfigPath = "SISADMIN_CONFIG"

// Client настройки терминального клиента
type Client struct {
	Env            string        `yaml:"env" env:"SISADMIN_ENV" env-default:"local" env-description:"environment: local, dev, prod"`
	ServerURL      string        `yaml:"server_url" env:"SISADMIN_SERVER_URL" env-default:"http://localhost:8080" env-description:"backend base URL"`
	DBPath         string        `yaml:"db_path" env:"SISADMIN_DB" env-default:"sisadmin-client.db" env-description:"bolt file with the session token"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SISADMIN_REQUEST_TIMEOUT" env-default:"30s" env-description:"HTTP request timeout"`
	RedirectDelay  time.Duration `yaml:"redirect_delay" env:"SISADMIN_REDIRECT_DELAY" env-default:"2s" env-description:"pause before opening the dashboard after registration"`
}

// Server настройки сервера
type Server struct {
	Env       string    `yaml:"env" env:"SISADMIN_ENV" env-default:"local"`
	HTTP      HTTP      `yaml:"http"`
	Storage   Storage   `yaml:"storage"`
	Token     Token     `yaml:"token"`
	RateLimit RateLimit `yaml:"rate_limit"`
}

// HTTP настройки HTTP сервера
type HTTP struct {
	Address         string        `yaml:"address" env:"SISADMIN_HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"SISADMIN_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"SISADMIN_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SISADMIN_HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Storage настройки хранилища пользователей
type Storage struct {
	DSN string `yaml:"dsn" env:"SISADMIN_DB_DSN" env-default:"sisadmin-server.db"`
}

// Token настройки выдачи JWT
type Token struct {
	Secret string        `yaml:"secret" env:"SISADMIN_JWT_SECRET"`
	Issuer string        `yaml:"issuer" env:"SISADMIN_JWT_ISSUER" env-default:"sisadmin"`
	TTL    time.Duration `yaml:"ttl" env:"SISADMIN_JWT_TTL" env-default:"24h"`
}

// RateLimit ограничение запросов к /auth с одного IP
type RateLimit struct {
	RequestsPerMinute int  `yaml:"requests_per_minute" env:"SISADMIN_RATE_LIMIT_RPM" env-default:"10"`
	Disabled          bool `yaml:"disabled" env:"SISADMIN_RATE_LIMIT_DISABLED"`
}

// ErrInvalid конфигурация не прошла проверку
var ErrInvalid = errors.New("invalid config")

// LoadClient читает настройки клиента
func LoadClient(path string) (*Client, error) {
	cfg := &Client{}
	if err := load(resolvePath(path), cfg); err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("%w: server url is empty", ErrInvalid)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("%w: request timeout must be positive", ErrInvalid)
	}
	if cfg.RedirectDelay < 0 {
		return nil, fmt.Errorf("%w: redirect delay must not be negative", ErrInvalid)
	}
	return cfg, nil
}

// LoadServer читает настройки сервера. Секрет JWT обязателен.
func LoadServer(path string) (*Server, error) {
	cfg := &Server{}
	if err := load(resolvePath(path), cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет настройки сервера
func (c *Server) Validate() error {
	if c.Token.Secret == "" {
		return fmt.Errorf("%w: SISADMIN_JWT_SECRET is required", ErrInvalid)
	}
	if c.Token.TTL <= 0 {
		return fmt.Errorf("%w: token ttl must be positive", ErrInvalid)
	}
	if !c.RateLimit.Disabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalid)
	}
	return nil
}

// Description возвращает описание переменных окружения для справки
func Description(cfg any) string {
	desc, err := cleanenv.GetDescription(cfg, nil)
	if err != nil {
		return ""
	}
	return desc
}

// resolvePath: явный путь из флага важнее переменной окружения
func resolvePath(path string) string {
	if path != "" {
		return path
	}
	return os.Getenv(EnvConfigPath)
}

func load(path string, cfg any) error {
	// 1. Сначала читаем yaml конфиг (если есть)
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	// 2. Затем env переменные (имеют приоритет) и значения по умолчанию
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("failed to read env variables: %w", err)
	}
	return nil
}
