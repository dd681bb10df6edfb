// Package config loads host-program settings: defaults, then an optional
// quasi.yaml, then QUASI_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the config file looked up in the working directory when
// no explicit path is given.
const ConfigFileName = "quasi.yaml"

// Defaults.
const (
	DefaultLedgerPath = "quasi.db"
	DefaultLogLevel   = "info"
)

// Config holds host-program settings. The core model takes none of these;
// everything here belongs to the CLI.
type Config struct {
	LedgerPath string `koanf:"ledger_path"`
	LogLevel   string `koanf:"log_level"`
}

// Load builds a Config with precedence defaults < config file < environment.
// cfgFile may be empty, in which case quasi.yaml is tried in the working
// directory; a missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"ledger_path": DefaultLedgerPath,
		"log_level":   DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	explicit := cfgFile != ""
	if !explicit {
		cfgFile = ConfigFileName
	}
	if _, err := os.Stat(cfgFile); err == nil {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", cfgFile, err)
	}

	// QUASI_LEDGER_PATH -> ledger_path
	if err := k.Load(env.Provider("QUASI_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "QUASI_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
