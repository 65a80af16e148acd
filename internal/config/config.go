// Package config loads CLI settings from the environment. A .env file in the
// working directory is read first when present; variables already set in the
// process environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings shared by every formwizard command.
type Config struct {
	// DefinitionPath points at a YAML/JSON form definition. Empty selects the
	// embedded registration form.
	DefinitionPath string `env:"FORMWIZARD_DEFINITION"`
	OutputFormat   string `env:"FORMWIZARD_OUTPUT" envDefault:"json"`
	LogLevel       string `env:"FORMWIZARD_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"FORMWIZARD_LOG_FORMAT" envDefault:"console"`
	ConfirmSubmit  bool   `env:"FORMWIZARD_CONFIRM_SUBMIT" envDefault:"false"`
}

// Load reads the optional dotenv files (".env" when none are given) and parses
// the process environment.
func Load(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return parse(env.Options{})
}

// Parse builds a Config from an explicit variable set instead of the process
// environment.
func Parse(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	return cfg, nil
}
