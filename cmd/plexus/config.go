package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all CLI configuration.
type Config struct {
	Input       string  `koanf:"input"`
	Format      string  `koanf:"format"`
	Run         string  `koanf:"run"`
	Separator   string  `koanf:"separator"`
	Directed    bool    `koanf:"directed"`
	Weighted    bool    `koanf:"weighted"`
	ExplicitDir bool    `koanf:"explicit-direction"`
	Alpha       float64 `koanf:"alpha"`
	Iterations  int     `koanf:"iterations"`
	Convergence float64 `koanf:"convergence"`
	Verbose     bool    `koanf:"verbose"`
}

// configFile is the optional TOML configuration next to the invocation.
const configFile = "plexus.toml"

// envPrefix namespaces environment overrides (e.g. PLEXUS_ALPHA=0.1).
const envPrefix = "PLEXUS_"

// loadConfig resolves configuration with the usual priority:
// flags > env > config file > defaults.
func loadConfig(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	defaults := map[string]interface{}{
		"input":              "",
		"format":             "json",
		"run":                "stats",
		"separator":          ",",
		"directed":           false,
		"weighted":           false,
		"explicit-direction": false,
		"alpha":              0.15,
		"iterations":         1000,
		"convergence":        1e-4,
		"verbose":            false,
	}
	if err := k.Load(mapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Config file (optional; absence is not an error).
	_ = k.Load(file.Provider(configFile), toml.Parser())

	// 3. Environment variables: PLEXUS_RUN=pagerank → run.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, envPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
	}

	// 4. Flags.
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// mapProvider adapts a plain map into a koanf provider.
type mapConfProvider struct {
	m map[string]interface{}
}

func mapProvider(m map[string]interface{}) *mapConfProvider {
	return &mapConfProvider{m: m}
}

func (p *mapConfProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapConfProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
