package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageMySQL  = "mysql"
	StorageMemory = "memory"
)

type Settings struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort string `env:"APP_PORT" envDefault:"5000"`

	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	StorageType string `env:"STORAGE_TYPE" envDefault:"mysql"`
	DBDSN       string `env:"DB_DSN"`

	// فقط برای STORAGE_TYPE=memory: "u1:Ana|ana@example.com,u2:Bob" و "c1:News,c2:Tech"
	MemoryUsers      map[string]string `env:"MEMORY_USERS"`
	MemoryCategories map[string]string `env:"MEMORY_CATEGORIES"`

	// خالی بودن REDIS_ADDR کش را غیرفعال می‌کند
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	ProjectionCacheTTL time.Duration `env:"PROJECTION_CACHE_TTL" envDefault:"5m"`

	UpdateRequiresOwnership bool          `env:"UPDATE_REQUIRES_OWNERSHIP" envDefault:"true"`
	ShutdownTimeout         time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load بارگذاری .env (در صورت وجود) و سپس خواندن متغیرهای محیطی
func Load(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}

	s, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.StorageType {
	case StorageMySQL:
		if s.DBDSN == "" {
			return errors.New("DB_DSN is not set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_TYPE %q", s.StorageType)
	}
	if s.AppEnv != EnvDevelopment && s.AppEnv != EnvProduction {
		return fmt.Errorf("unknown APP_ENV %q", s.AppEnv)
	}
	return nil
}

func (s Settings) Addr() string {
	return ":" + s.AppPort
}
