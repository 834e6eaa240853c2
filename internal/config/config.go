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
//  3. файл .yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Ops       OpsConfig       `yaml:"ops"`
	Auth      AuthConfig      `yaml:"auth"`
	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	S3        S3Config        `yaml:"s3"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Assistant AssistantConfig `yaml:"assistant"`
	Progress  ProgressConfig  `yaml:"progress"`
	Reminder  ReminderConfig  `yaml:"reminder"`
	Limits    LimitsConfig    `yaml:"limits"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки основного HTTP-сервера (REST API).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// OpsConfig — сетевые настройки служебного HTTP-сервера (healthz/metrics).
type OpsConfig struct {
	Host string `yaml:"host" env:"OPS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"OPS_PORT" env-default:"9090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (o OpsConfig) Addr() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"24h"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"168h"`
	// RotateBlacklistTTL — на сколько блэклистится старый access-токен при ротации.
	// Намеренно короче остаточного времени жизни: достаточно закрыть окно
	// «запросов в полёте».
	RotateBlacklistTTL time.Duration `yaml:"rotate_blacklist_ttl" env:"ROTATE_BLACKLIST_TTL" env-default:"15m"`
	Issuer             string       `yaml:"issuer" env:"ISSUER" env-default:"workout-planner"`
	Audience           []string     `yaml:"audience" env:"AUDIENCE" env-default:"workout-planner-api"`
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DatabaseURL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — настройки подключения к Redis (блэклист access-токенов).
type RedisConfig struct {
	RedisURL string `yaml:"redis_url" env:"REDIS_URL" env-required:"true"`
}

// S3Config — настройки объектного хранилища (MinIO/S3) для аватаров.
type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT" env-required:"true"`
	RootUser      string        `yaml:"root_user" env:"S3_ROOT_USER" env-required:"true"`
	RootPassword  string        `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET" env-default:"avatars"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL" env-default:""`
}

// AvatarConfig — ограничения на загружаемые аватары.
type AvatarConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"AVATAR_MAX_SIZE_BYTES" env-default:"2097152"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"AVATAR_ALLOWED_CONTENT_TYPES" env-default:"image/jpeg,image/png,image/webp"`
}

// SMTPConfig — параметры отправки почты (напоминания о тренировках).
type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:""`
	Port     string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USER" env-default:""`
	Password string `yaml:"password" env:"SMTP_PASS" env-default:""`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:"no-reply@workout-planner.local"`
}

// Enabled сообщает, сконфигурирована ли отправка почты.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

// AssistantConfig — параметры LLM-ассистента (анализ питания, генерация тренировок).
type AssistantConfig struct {
	APIKey  string        `yaml:"api_key" env:"ASSISTANT_API_KEY" env-default:""`
	BaseURL string        `yaml:"base_url" env:"ASSISTANT_BASE_URL" env-default:""`
	Model   string        `yaml:"model" env:"ASSISTANT_MODEL" env-default:"gpt-4o-mini"`
	Timeout time.Duration `yaml:"timeout" env:"ASSISTANT_TIMEOUT" env-default:"30s"`
}

// ProgressConfig — параметры аналитики прогресса.
// UTCOffsetHours задаёт фиксированный часовой пояс группировки по дням;
// смещение всегда явное, машинно-локальная зона не используется.
type ProgressConfig struct {
	UTCOffsetHours int `yaml:"utc_offset_hours" env:"PROGRESS_UTC_OFFSET_HOURS" env-default:"7"`
}

// Location возвращает фиксированную зону для группировки по календарным дням.
func (p ProgressConfig) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", p.UTCOffsetHours), p.UTCOffsetHours*3600)
}

// ReminderConfig — параметры ежедневных напоминаний о тренировках.
type ReminderConfig struct {
	Enabled bool `yaml:"enabled" env:"REMINDER_ENABLED" env-default:"false"`
	// Hour — локальный час (в зоне Progress.UTCOffsetHours), в который
	// рассылаются напоминания на сегодняшние тренировки.
	Hour int `yaml:"hour" env:"REMINDER_HOUR" env-default:"7"`
	// QueueSize — размер буфера очереди писем.
	QueueSize int `yaml:"queue_size" env:"REMINDER_QUEUE_SIZE" env-default:"256"`
}

// LimitsConfig — лимиты запросов к API.
type LimitsConfig struct {
	RateLimit       int           `yaml:"rate_limit" env:"RATE_LIMIT" env-default:"100"`
	RateLimitWindow time.Duration `yaml:"rate_limit_window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
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
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
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
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}

		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
