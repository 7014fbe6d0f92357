package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/machakos/malaria/api/v1beta1/configs"
	"github.com/machakos/malaria/pkg/extract"
)

// Load reads, validates and defaults the configuration at path. A missing
// file yields the defaults unless required is set.
func Load(path string, required bool, opts ...LoaderOpt) (*configs.Config, error) {
	loader, err := NewLoaderFromFile(path, configs.New, configs.DefaultValidator(), opts...)
	if errors.Is(err, fs.ErrNotExist) && !required {
		slog.Debug("config file not found, using defaults", slog.String("path", path))

		return configs.New(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	err = loader.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	slog.Debug("loaded config",
		slog.String("path", path),
		slog.Int("keyword_symptoms", len(cfg.Keywords)),
	)

	return cfg, nil
}

// Dictionary returns the built-in keyword dictionary extended with the
// phrases from cfg.
func Dictionary(cfg *configs.Config) (extract.Dictionary, error) {
	dict, err := extract.Default().Extend(cfg.SymptomKeywords())
	if err != nil {
		return extract.Dictionary{}, fmt.Errorf("extend keywords: %w", err)
	}

	return dict, nil
}
