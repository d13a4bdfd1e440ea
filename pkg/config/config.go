package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App AppConfig
}

type AppConfig struct {
	Env       string `envconfig:"QUOTES_APP_ENV" default:"dev"`
	Port      int    `envconfig:"QUOTES_APP_PORT" default:"8080"`
	LogLevel  string `envconfig:"QUOTES_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"QUOTES_LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
