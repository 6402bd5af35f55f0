package internal

import (
	"fmt"
	"sentence-lab/errors"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	InputFilepath   string        `env:"INPUT_FILEPATH,default=input.txt" validate:"required"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=4" validate:"min=1,max=64"`
	BufferSize      int           `env:"BUFFER_SIZE,default=64" validate:"min=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	Colours         bool          `env:"COLOURS,default=false"`
	Summary         bool          `env:"SUMMARY,default=false"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}
