// Package config loads the layered application configuration: embedded
// defaults, then the user config file, then FIGGO_* environment variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	figgoerr "github.com/figgo/figgo/pkg/errors"
	"github.com/figgo/figgo/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds application-level settings. Banner styling lives in
// pkg/style; this is only the environment figgo runs in.
type Config struct {
	// Font is the default font when neither flags nor template set one
	Font string `koanf:"font"`
	// Width is the default banner width
	Width int `koanf:"width"`
	// Color globally enables ANSI output on terminals
	Color bool `koanf:"color"`

	Templates struct {
		// Dir overrides the user template directory
		Dir string `koanf:"dir"`
	} `koanf:"templates"`

	Fonts struct {
		// Dir overrides the custom font directory
		Dir string `koanf:"dir"`
	} `koanf:"fonts"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Path returns the user config file location
func Path() string {
	return paths.ConfigFile()
}

// Load builds the effective configuration:
// embedded defaults -> user config file -> FIGGO_* environment
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, figgoerr.Wrap(err, figgoerr.ErrConfigLoad, "failed to load defaults")
	}

	path := Path()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, figgoerr.Wrapf(err, figgoerr.ErrConfigParse,
				"failed to parse config file %s", path)
		}
	}

	// FIGGO_FONT=doom, FIGGO_TEMPLATES_DIR=/path, ...
	if err := k.Load(env.Provider("FIGGO_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FIGGO_")), "_", ".")
	}), nil); err != nil {
		return nil, figgoerr.Wrap(err, figgoerr.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, figgoerr.Wrap(err, figgoerr.ErrConfigParse, "invalid configuration values")
	}
	return &cfg, nil
}
