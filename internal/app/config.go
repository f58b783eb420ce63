package app

import (
	"errors"

	"github.com/vk/registrygen/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string     // task files, directories or globs
	Task        *config.Task // ad-hoc task from flags; nil if none

	LogFormat   string
	LogLevel    string
	WorkerCount int
	FailFast    bool
	Watch       bool
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 && cfg.Task == nil {
		return nil, errors.New("a task file or an ad-hoc task (--input, --output, --type) is required")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("WorkerCount must be at least 1")
	}
	return &cfg, nil
}
