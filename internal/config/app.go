package config

import (
	"log"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"mock-interviewer"`
	Env      string `envconfig:"APP_ENV" default:"production"`
	Port     string `envconfig:"APP_PORT" default:":8080"`
	BaseURL  string `envconfig:"APP_URL"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// Pprof mounts the /debug/pprof routes.
	Pprof bool `envconfig:"APP_PPROF" default:"false"`
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = new(AppConfig)
		if err := envconfig.Process("", appConfig); err != nil {
			log.Printf("Warning: invalid app configuration, using defaults: %v", err)
			appConfig = &AppConfig{Name: "mock-interviewer", Env: "production", Port: ":8080", LogLevel: "info"}
		}
	})
	return appConfig
}

// IsDevelopment reports an explicit development environment. Any other value,
// including unknown ones, is treated like production for error detail.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}
