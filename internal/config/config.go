// Package config loads CLI settings from an optional YAML file and
// MATRIMONY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/iudanet/matrimony-client/internal/validation"
)

// EnvConfigPath указывает путь к YAML файлу, если не задан флаг --config
const EnvConfigPath = "MATRIMONY_CONFIG"

// Драйверы локального хранилища
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config описывает настройки клиента. Приоритет: флаги > env > файл > default.
type Config struct {
	Storage   StorageConfig `yaml:"storage"`
	Log       LogConfig     `yaml:"log"`
	ServerURL string        `yaml:"server_url" env:"MATRIMONY_SERVER_URL" env-default:"http://localhost:8080" validate:"required,url"`
	Cache     CacheConfig   `yaml:"cache"`
	Timeout   time.Duration `yaml:"timeout" env:"MATRIMONY_TIMEOUT" env-default:"30s" validate:"gte=0"`
}

// StorageConfig настройки локального хранилища сессии
type StorageConfig struct {
	Driver string `yaml:"driver" env:"MATRIMONY_STORAGE_DRIVER" env-default:"bolt" validate:"oneof=bolt sqlite memory"`
	Path   string `yaml:"path" env:"MATRIMONY_DB_PATH" env-default:"matrimony-client.db" validate:"required_unless=Driver memory"`
	// Passphrase включает шифрование токенов. Только из окружения.
	Passphrase string `yaml:"-" env:"MATRIMONY_STORE_PASSPHRASE"`
}

// CacheConfig политика кэша собственного профиля
type CacheConfig struct {
	ProfileTTL        time.Duration `yaml:"profile_ttl" env:"MATRIMONY_PROFILE_TTL" env-default:"0s" validate:"gte=0"`
	InvalidateOnLogin bool          `yaml:"invalidate_on_login" env:"MATRIMONY_INVALIDATE_PROFILE_ON_LOGIN" env-default:"false"`
}

// LogConfig настройки логирования
type LogConfig struct {
	Level  string `yaml:"level" env:"MATRIMONY_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"MATRIMONY_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
}

// Load reads the config. path may be empty; then MATRIMONY_CONFIG is
// consulted, and without either only the environment and defaults apply.
// Values are not validated here: flags are applied on top first, then the
// caller runs Validate.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &cfg, nil
}

// Validate проверяет значения после применения флагов
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Usage возвращает описание переменных окружения для справки CLI
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
