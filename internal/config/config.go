// Package config handles loading and parsing the driver configuration.
// It supports two sources:
//  1. A YAML file, whose path comes from --config or CONFIG_PATH.
//  2. Environment variables only, when no path is given.
//
// The address book itself takes no configuration. This package only feeds
// the command-line driver: log format and the contacts to seed.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file. Scalar fields can also be
// overridden by the corresponding environment variable (env:"...").
//
// validate:"..." tags are checked after loading, so a bad phone in the
// YAML file stops the driver before any record is built.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// Contacts are added to the address book by the list command.
	Contacts []Contact `yaml:"contacts" validate:"dive"`
}

// Contact is one seed entry under contacts: in the YAML file.
//
//	contacts:
//	  - name: John
//	    phones: ["1234567890", "5555555555"]
type Contact struct {
	Name   string   `yaml:"name"   validate:"required"`
	Phones []string `yaml:"phones" validate:"dive,len=10,number"`
}

// Load reads, validates, and returns the driver config.
//
// An empty path skips the file and reads environment variables only,
// applying env-default values for anything unset.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// Stat first so a missing file gives a clear message rather than a
		// parser error.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config.Load: config file %s: %w", path, err)
		}
		// cleanenv.ReadConfig reads the YAML file, then applies env
		// overrides and env-default values.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		// Struct returns ValidationErrors for rule failures and
		// *InvalidValidationError only for programming mistakes.
		if errs, ok := err.(validator.ValidationErrors); ok {
			return nil, fmt.Errorf("config.Load: %w", &ValidationError{Errs: errs})
		}
		return nil, fmt.Errorf("config.Load: validate: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load that exits the process on failure.
// If this function returns, the config is valid.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}
	return cfg
}
