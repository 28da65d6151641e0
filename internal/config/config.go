// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	Version   string          `yaml:"version" env:"APP_VERSION" env-default:"0.1.0"`
	HTTP      HTTPConfig      `yaml:"http"`
	Auth      AuthConfig      `yaml:"auth"`
	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET_KEY" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"JWT_REFRESH_TOKEN_TTL" env-default:"720h"`
	Issuer          string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"thought-diary"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — подключение к общему хранилищу blocklist.
// Пустой URL означает in-memory blocklist (только для одного процесса).
type RedisConfig struct {
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`
	Prefix   string `yaml:"prefix" env:"REDIS_PREFIX" env-default:"blocklist:"`
}

// SentimentConfig — параметры клиента GitHub Models.
// Пустые значения добираются в sentiment.New из окружения и дефолтов.
type SentimentConfig struct {
	APIKey    string        `yaml:"api_key" env:"GITHUB_API_KEY"`
	Model     string        `yaml:"model" env:"GITHUB_MODEL"`
	MaxTokens int           `yaml:"max_tokens" env:"GITHUB_MAX_TOKENS"`
	Endpoint  string        `yaml:"endpoint" env:"GITHUB_MODELS_URL"`
	Timeout   time.Duration `yaml:"timeout" env:"SENTIMENT_TIMEOUT" env-default:"10s"`
}

// RateLimitConfig — лимиты запросов по IP клиента.
// Нулевой или отрицательный лимит отключает соответствующее ограничение.
type RateLimitConfig struct {
	Disabled        bool          `yaml:"disabled" env:"RATE_LIMIT_DISABLED"`
	RegisterPerHour int           `yaml:"register_per_hour" env:"RATE_LIMIT_REGISTER_PER_HOUR" env-default:"3"`
	LoginPerWindow  int           `yaml:"login_per_window" env:"RATE_LIMIT_LOGIN" env-default:"5"`
	LoginWindow     time.Duration `yaml:"login_window" env:"RATE_LIMIT_LOGIN_WINDOW" env-default:"15m"`
	DefaultPerHour  int           `yaml:"default_per_hour" env:"RATE_LIMIT_DEFAULT_PER_HOUR" env-default:"50"`
}

// CORSConfig — разрешённые источники для браузерных клиентов.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
