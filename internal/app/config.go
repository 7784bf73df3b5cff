package app

import (
	"errors"
	"fmt"
)

// Output formats understood by App.Run.
const (
	OutputSummary = "summary"
	OutputYAML    = "yaml"
	OutputJSON    = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FormPath string // a form file, or a directory of .hcl files
	Output   string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FormPath == "" {
		return nil, errors.New("FormPath is a required configuration field and cannot be empty")
	}

	switch cfg.Output {
	case "":
		cfg.Output = OutputSummary
	case OutputSummary, OutputYAML, OutputJSON:
	default:
		return nil, fmt.Errorf("invalid output %q: must be 'summary', 'yaml' or 'json'", cfg.Output)
	}

	return &cfg, nil
}
