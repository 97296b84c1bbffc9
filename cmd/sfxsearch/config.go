package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	ExportNone = ""
	ExportJSON = "json"
	ExportCBOR = "cbor"
)

var (
	ErrNoInput        = errors.New("sfxsearch: one of text or file is required")
	ErrAmbiguousInput = errors.New("sfxsearch: text and file are mutually exclusive")
	ErrBadExport      = errors.New("sfxsearch: export must be json or cbor")
)

type Config struct {
	// indexed input, exactly one of these
	Text string
	File string

	Patterns []string

	// debug export of the tree, written to Output ("" or "-" is stdout)
	Export string
	Output string

	LogLevel string `yaml:"logLevel"`
}

// Parse applies defaults and validates the configuration.
func (cfg *Config) Parse() error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "INFO"
	}
	cfg.Export = strings.ToLower(cfg.Export)
	switch cfg.Export {
	case ExportNone, ExportJSON, ExportCBOR:
	default:
		return fmt.Errorf("%w: %q", ErrBadExport, cfg.Export)
	}
	if cfg.Text != "" && cfg.File != "" {
		return ErrAmbiguousInput
	}
	if cfg.Text == "" && cfg.File == "" {
		return ErrNoInput
	}
	return nil
}

// Input returns the bytes to index.
func (cfg *Config) Input() ([]byte, error) {
	if cfg.File == "" {
		return []byte(cfg.Text), nil
	}
	return os.ReadFile(cfg.File)
}

func loadConfig(fp string, cfg *Config) error {
	if fp == "" {
		return nil
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}
