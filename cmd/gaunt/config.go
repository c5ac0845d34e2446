package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gaunt/gaunt"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

// Config is the effective run configuration. It can come from a YAML file
// (--config); flags set explicitly on the command line win over the file.
type Config struct {
	N        int    `yaml:"n"`
	Nu       int    `yaml:"nu"`
	M        int    `yaml:"m"`
	Mu       int    `yaml:"mu"`
	Format   string `yaml:"format"`
	Validate bool   `yaml:"validate"`
	Strict   bool   `yaml:"strict"`
}

// DefaultConfig reproduces the reference demo P_500^400·P_500^400.
func DefaultConfig() Config {
	return Config{N: 500, Nu: 500, M: 400, Mu: 400, Format: formatText}
}

// Params converts the degrees and orders to gaunt.Params.
func (c Config) Params() gaunt.Params {
	return gaunt.Params{N: c.N, Nu: c.Nu, M: c.M, Mu: c.Mu}
}

// Options maps the switches to gaunt options.
func (c Config) Options() []gaunt.Option {
	var opts []gaunt.Option
	if c.Validate {
		opts = append(opts, gaunt.WithValidation())
	}
	if c.Strict {
		opts = append(opts, gaunt.WithStrictFinite())
	}

	return opts
}

func (c Config) validate() error {
	switch c.Format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%q (want %s, %s or %s): %w", c.Format, formatText, formatJSON, formatYAML, errUnknownFormat)
	}
}

// loadConfig reads path over DefaultConfig. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// mergeFlags copies every flag the user set explicitly from flags into cfg.
func mergeFlags(cmd *cobra.Command, cfg, flags Config) Config {
	changed := cmd.Flags().Changed
	if changed("n") {
		cfg.N = flags.N
	}
	if changed("nu") {
		cfg.Nu = flags.Nu
	}
	if changed("m") {
		cfg.M = flags.M
	}
	if changed("mu") {
		cfg.Mu = flags.Mu
	}
	if changed("format") {
		cfg.Format = flags.Format
	}
	if changed("validate") {
		cfg.Validate = flags.Validate
	}
	if changed("strict") {
		cfg.Strict = flags.Strict
	}

	return cfg
}
