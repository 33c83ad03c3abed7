package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/pageshell/internal/config"
	"github.com/alexisbeaulieu97/pageshell/internal/logger"
)

// newLogger builds the command logger writing to w.
func (f *rootFlags) newLogger(w io.Writer) (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, Format: f.logFormat, Writer: w})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// loadConfig reads .env, the config file and environment overrides, in that
// order.
func (f *rootFlags) loadConfig(log *logger.Logger) (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	source := f.configPath
	if source == "" {
		source = "defaults"
	}
	log.WithFields(map[string]any{
		"config": source,
		"title":  cfg.Title,
	}).Debug("configuration loaded")

	return cfg, nil
}
