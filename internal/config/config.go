package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	errorsUtils "github.com/Egor213/CodeActivity/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
		WakaTime   `yaml:"wakatime"`
		Activity   `yaml:"activity"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-default:"code-activity"`
		Version string `yaml:"version" env:"APP_VERSION" env-default:"dev"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	HTTP struct {
		Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"3s"`
	}

	Prometheus struct {
		Port string `yaml:"port" env:"PROMETHEUS_PORT" env-default:"9090"`
	}

	// APIKey is optional at startup: a missing key is reported per request.
	WakaTime struct {
		APIKey  string        `yaml:"api_key" env:"WAKATIME_API_KEY"`
		BaseURL string        `yaml:"base_url" env:"WAKATIME_BASE_URL" env-default:"https://wakatime.com/api/v1"`
		Timeout time.Duration `yaml:"timeout" env:"WAKATIME_TIMEOUT" env-default:"10s"`
	}

	Activity struct {
		Rounding    string `yaml:"rounding" env:"ACTIVITY_ROUNDING" env-default:"ceil"`
		DisableCORS bool   `yaml:"disable_cors" env:"ACTIVITY_DISABLE_CORS"`
	}
)

const (
	defaultConfigPath = "config/config.yaml"
	defaultEnvPath    = ".env"
)

func New() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = defaultConfigPath
	}

	if _, err := os.Stat(pathToConfig); errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", pathToConfig).Info("Config file not found, reading env only")
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

func loadDotEnv() error {
	envPath, ok := os.LookupEnv("APP_ENV_PATH")
	if !ok || envPath == "" {
		envPath = defaultEnvPath
	}

	err := godotenv.Load(envPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", envPath).Debug("No .env file, skipping")
		return nil
	}
	return err
}
