package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel        string        `yaml:"log-level"        env:"LOG_LEVEL"        env-default:"info"`
	HTTPPort        string        `yaml:"http-port"        env:"HTTP_PORT"        env-default:"3000"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	Storage         string        `yaml:"storage"          env:"STORAGE"          env-default:"memory"`
	StaticDir       string        `yaml:"static-dir"       env:"STATIC_DIR"`
	Redis           Redis         `yaml:"redis"`
	CORS            CORS          `yaml:"cors"`
	Events          Events        `yaml:"events"`
}

type Redis struct {
	Host     string        `yaml:"host"     env:"REDIS_HOST"     env-default:"localhost"`
	Port     string        `yaml:"port"     env:"REDIS_PORT"     env-default:"6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	KeyTTL   time.Duration `yaml:"key-ttl"  env:"REDIS_KEY_TTL"  env-default:"24h"`
}

type CORS struct {
	AllowOrigins []string `yaml:"allow-origins" env:"CORS_ALLOW_ORIGINS" env-default:"*"`
}

type Events struct {
	Buffer int `yaml:"buffer" env:"EVENTS_BUFFER" env-default:"16"`
}

// MustLoad - load all configurations in config.yml file. Without the file
// only the environment and defaults are used.
func MustLoad(path string) *Config {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err = config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

var (
	ErrUnknownStorage = errors.New("unknown storage")
	ErrEmptyPort      = errors.New("http port is empty")
)

func (that *Config) Validate() error {
	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}

	if that.HTTPPort == "" {
		return ErrEmptyPort
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
