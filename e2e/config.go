package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_WORKERS sets how many analysis workers the pipeline runs
	Workers int `envconfig:"E2E_WORKERS" default:"4"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_DEBUG_OUTPUT dumps the rendered diagnostics of each scenario
	DebugOutput bool `envconfig:"E2E_DEBUG_OUTPUT" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
