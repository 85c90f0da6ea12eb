package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	// Storage selects the episode backend, redis or sqlite.
	Storage string `yaml:"storage" env:"STORAGE" env-default:"redis"`
	Redis   Redis  `yaml:"redis"`
	SQLite  SQLite `yaml:"sqlite"`
	Env     Env    `yaml:"env"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	EpisodeTTL time.Duration `yaml:"episode-ttl" env:"REDIS_EPISODE_TTL" env-default:"24h"`
}

type SQLite struct {
	Path       string        `yaml:"path" env:"SQLITE_PATH" env-default:"episodes.db"`
	EpisodeTTL time.Duration `yaml:"episode-ttl" env:"SQLITE_EPISODE_TTL" env-default:"24h"`
}

// Env holds the defaults for new environments.
type Env struct {
	SymmetricalView bool   `yaml:"symmetrical-view" env:"ENV_SYMMETRICAL_VIEW" env-default:"false"`
	UseActionMask   bool   `yaml:"use-action-mask" env:"ENV_USE_ACTION_MASK" env-default:"false"`
	StartMark       string `yaml:"start-mark" env:"ENV_START_MARK" env-default:"O"`
}

// MustLoad - load all configurations, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
