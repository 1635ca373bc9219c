// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads propsheet settings from defaults, an optional YAML
// file and command-line flags, in increasing order of precedence.
package config

import (
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/propsheet/internal/logging"
)

// Config holds runtime settings.
type Config struct {
	Manifest  string `koanf:"manifest"`
	LogFormat string `koanf:"log_format"`
	LogLevel  string `koanf:"log_level"`
	Subject   string `koanf:"subject"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Manifest:  "content-types.yaml",
		LogFormat: string(logging.FormatText),
		LogLevel:  "info",
	}
}

// RegisterFlags adds the configuration flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("manifest", d.Manifest, "content types manifest file")
	fs.String("log-format", d.LogFormat, "log format: json or text")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn or error")
	fs.String("subject", d.Subject, "subject recorded on modification events")
}

// Load builds the configuration. path may be empty to skip the file;
// flags may be nil to skip flag overrides. Flags left at their default do
// not override values from the file.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").Wrap(err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_INVALID").Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have a fixed set of values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Manifest) == "" {
		return oops.Code("CONFIG_INVALID").Errorf("manifest path cannot be empty")
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}
	return nil
}

// LoggingOptions converts the log settings for logging.Setup.
// The configuration must have passed Validate.
func (c Config) LoggingOptions(service, version string) logging.Options {
	format, _ := logging.ParseFormat(c.LogFormat)
	level, _ := logging.ParseLevel(c.LogLevel)
	return logging.Options{
		Service: service,
		Version: version,
		Format:  format,
		Level:   level,
	}
}
